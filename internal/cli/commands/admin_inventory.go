package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/roomdesk/roomdesk/internal/cli/client"
	"github.com/roomdesk/roomdesk/internal/cli/inventory"
	"github.com/roomdesk/roomdesk/internal/cli/output"
	"github.com/spf13/cobra"
)

const defaultInventoryDays = 14

type inventoryRange struct {
	room int
	from string
	to   string
}

func (r *inventoryRange) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.room, "room", 0, "Only show this room ID")
	cmd.Flags().StringVar(&r.from, "from", "", "First date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&r.to, "to", "", fmt.Sprintf("Last date (YYYY-MM-DD, default from + %d days)", defaultInventoryDays-1))
}

// resolve fills in missing dates relative to now.
func (r inventoryRange) resolve(now time.Time) (from, to string, err error) {
	from = r.from
	if from == "" {
		from = now.Format(client.DateLayout)
	}
	to = r.to
	if to == "" {
		start, err := time.Parse(client.DateLayout, from)
		if err != nil {
			return "", "", fmt.Errorf("invalid --from date '%s': expected YYYY-MM-DD", from)
		}
		to = start.AddDate(0, 0, defaultInventoryDays-1).Format(client.DateLayout)
	}
	return from, to, nil
}

func newAdminInventoryCmd(opts []Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "View and edit per-day room availability",
	}

	var lsRange inventoryRange
	lsCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show the availability matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			from, to, err := lsRange.resolve(e.now())
			if err != nil {
				return err
			}
			return renderInventory(e.ctx(cmd), e, lsRange.room, from, to)
		},
	}
	lsRange.bind(lsCmd)
	cmd.AddCommand(lsCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "set <room-id> <date> <available>",
		Short: "Set how many rooms are still available on a date",
		Long: `Set how many rooms are still available on a date.

Existing records keep their booked count and get a new total of booked +
available. Dates without a record get a new one.

Examples:
  $ roomdesk admin inventory set 12 2026-11-02 5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := parseID(args[0], "room")
			if err != nil {
				return err
			}
			date := args[1]
			if _, err := time.Parse(client.DateLayout, date); err != nil {
				return fmt.Errorf("invalid date '%s': expected YYYY-MM-DD", date)
			}
			available, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid available count '%s'", args[2])
			}

			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}

			saved, err := inventory.NewEditor(e.api).SetAvailability(e.ctx(cmd), roomID, date, available)
			if err != nil {
				return err
			}

			e.printer.Message("✓ Room #%d on %s: %d available (%d total, %d booked)",
				saved.Room, saved.Date, saved.Available(), saved.TotalRooms, saved.BookedRooms)
			if e.printer.Format() == output.FormatTable {
				return nil
			}
			return e.printer.Print(saved, nil)
		},
	})

	var watchRange inventoryRange
	var every string
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Redraw the availability matrix on a schedule",
		Long: `Redraw the availability matrix on a schedule until interrupted.

--every takes a cron expression or a descriptor such as "@every 30s".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newAdminEnv(cmd, collect(opts))
			if err != nil {
				return err
			}
			return runInventoryWatch(e.ctx(cmd), e, watchRange, every)
		},
	}
	watchRange.bind(watchCmd)
	watchCmd.Flags().StringVar(&every, "every", "@every 10s", "Refresh schedule")
	cmd.AddCommand(watchCmd)

	return cmd
}

func renderInventory(ctx context.Context, e *env, roomID int, from, to string) error {
	m, err := inventory.NewEditor(e.api).Matrix(ctx, roomID, from, to)
	if err != nil {
		return err
	}
	if e.printer.Format() != output.FormatTable {
		return e.printer.Print(m, nil)
	}
	if len(m.Rows) == 0 {
		e.printer.Message("No rooms found.")
		return nil
	}
	if err := m.Render(e.out); err != nil {
		return err
	}
	e.printer.Message("\n* no inventory record; showing the room's total")
	return nil
}

// runInventoryWatch draws once, then again on every tick of schedule until
// ctx is done. A failed redraw is logged and the watch carries on; a 401 ends it.
func runInventoryWatch(ctx context.Context, e *env, r inventoryRange, schedule string) error {
	parsed, err := cron.ParseStandard(schedule)
	if err != nil {
		return fmt.Errorf("invalid --every schedule '%s': %w", schedule, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	draw := func() {
		from, to, err := r.resolve(e.now())
		if err == nil {
			fmt.Fprintf(e.out, "\n%s\n", e.now().Format(time.RFC3339))
			err = renderInventory(ctx, e, r.room, from, to)
		}
		if err != nil {
			e.logger.Error().Err(err).Msg("Failed to refresh inventory")
		}
		if e.guard.Triggered() {
			cancel()
		}
	}

	draw()
	if ctx.Err() != nil {
		return watchResult(e)
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(parsed, cron.FuncJob(draw))
	c.Start()
	defer func() { <-c.Stop().Done() }()

	<-ctx.Done()
	return watchResult(e)
}

func watchResult(e *env) error {
	if e.guard.Triggered() {
		return fmt.Errorf("stopped watching: credentials were rejected")
	}
	return nil
}
