package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bridgecrew/internal/deliberation"
	"bridgecrew/internal/display"
	"bridgecrew/internal/listener"
	"bridgecrew/internal/shiplog"
)

func newConsoleCmd(app App) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run deliberations interactively against the in-process core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(app)
		},
	}
}

func runConsole(app App) error {
	if err := listener.Init(); err != nil {
		return fmt.Errorf("init terminal input: %w", err)
	}
	defer listener.Close()

	listener.AsyncPrintln("Bridgecrew console. Commands: deliberate, log, story, clear, exit.")

	for {
		input := strings.ToLower(listener.GetInput())
		switch input {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return nil
		case "":
			continue
		case "deliberate", "d":
			runConsoleDeliberation(app)
		case "log":
			listener.AsyncPrintln(display.FormatEntries(app.Store.List()))
		case "story":
			listener.AsyncPrintln(shiplog.Narrate(app.Store.List()))
		case "clear":
			removed := app.Store.Clear()
			listener.AsyncPrintln(fmt.Sprintf("Cleared %d entries.", removed))
		default:
			listener.AsyncPrintln("Unknown command. Try: deliberate, log, story, clear, exit.")
		}
	}
}

func runConsoleDeliberation(app App) {
	crewName := listener.Ask("Crew member name [Cmdr. Ellis Shaw] > ", "Cmdr. Ellis Shaw")
	crewRole := listener.Ask("Crew role [captain] > ", "captain")
	routeName := listener.Ask("Mission name [Transatlantic Relay] > ", "Transatlantic Relay")
	cable := listener.Ask("Cable identifier [TAT-14] > ", "TAT-14")
	milestoneLabel := listener.Ask("Milestone [Midpoint Crossing] > ", "Midpoint Crossing")
	milestoneDesc := listener.Ask("Milestone description [Deepest leg of the corridor] > ",
		"Deepest leg of the corridor")
	elapsed := askFloat("Elapsed minutes [42] > ", 42)
	progress := askFloat("Progress 0..1 [0.5] > ", 0.5)
	heading := askOptionalFloat("Heading degrees [47, blank for steady] > ", "47")
	drift := askOptionalFloat("Drift points [-2, blank for centerline] > ", "-2")
	fuel := askOptionalFloat("Fuel % [blank to skip] > ", "")

	dctx := deliberation.BuildContext(deliberation.ContextInput{
		Crew: deliberation.CrewMember{
			ID:   strings.ToLower(strings.ReplaceAll(crewName, " ", "-")),
			Name: crewName,
			Role: crewRole,
		},
		Milestone: deliberation.Milestone{
			ID:          strings.ToLower(strings.ReplaceAll(milestoneLabel, " ", "-")),
			Label:       milestoneLabel,
			Description: milestoneDesc,
		},
		Route: deliberation.Route{
			ID:    strings.ToLower(strings.ReplaceAll(routeName, " ", "-")),
			Name:  routeName,
			Cable: cable,
		},
		ElapsedMinutes: elapsed,
		Progress:       progress,
		HeadingDeg:     heading,
		Drift:          drift,
		FuelPercent:    fuel,
	})

	listener.AsyncPrintln("Consulting the crew...")
	result, rm := app.Service.Deliberate(context.Background(), dctx)
	stored := app.Store.Append(shiplog.NewCrewEntry(dctx, result, rm))

	listener.AsyncPrintln(display.FormatResult(result))
	listener.AsyncPrintln(fmt.Sprintf("Logged as entry %s.", stored.ID))
}

func askFloat(prompt string, fallback float64) float64 {
	raw := listener.Ask(prompt, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

func askOptionalFloat(prompt, fallback string) *float64 {
	raw := listener.Ask(prompt, fallback)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
