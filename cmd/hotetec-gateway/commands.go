package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/spf13/cobra"
)

const cliDate = "2006-01-02"

func newAuthCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Open a provider session and print its token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApplication(cmd, rt, func(ctx context.Context, app *application) error {
				token, err := app.service.Authenticate(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]string{"session_id": token})
			})
		},
	}
}

func newAvailabilityCmd(rt *cliEnv) *cobra.Command {
	var (
		zone     string
		from     string
		to       string
		currency string
		rooms    []string
	)

	c := &cobra.Command{
		Use:   "availability",
		Short: "Search hotel availability in a zone",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := time.Parse(cliDate, from)
			if err != nil {
				return fmt.Errorf("--from must be YYYY-MM-DD: %w", err)
			}
			end, err := time.Parse(cliDate, to)
			if err != nil {
				return fmt.Errorf("--to must be YYYY-MM-DD: %w", err)
			}

			distributions := make([]models.Distribution, 0, len(rooms))
			for _, room := range rooms {
				d, err := parseRoom(room)
				if err != nil {
					return err
				}
				distributions = append(distributions, d)
			}

			query := models.AvailabilityQuery{
				StartDate:     start,
				EndDate:       end,
				ZoneCode:      zone,
				Distributions: distributions,
				Currency:      currency,
			}

			return withApplication(cmd, rt, func(ctx context.Context, app *application) error {
				result, err := app.service.Availability(ctx, query)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}

	c.Flags().StringVar(&zone, "zone", "", "zone code")
	c.Flags().StringVar(&from, "from", "", "check-in date (YYYY-MM-DD)")
	c.Flags().StringVar(&to, "to", "", "check-out date (YYYY-MM-DD)")
	c.Flags().StringVar(&currency, "currency", "", "currency code (default from config)")
	c.Flags().StringArrayVar(&rooms, "room", []string{"2"}, "room occupancy as ADULTS[:AGE,AGE...], repeatable")
	_ = c.MarkFlagRequired("zone")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")

	return c
}

// parseRoom reads "2" or "2:7,9" (two adults, children aged 7 and 9).
func parseRoom(value string) (models.Distribution, error) {
	adultsPart, agesPart, hasAges := strings.Cut(strings.TrimSpace(value), ":")

	adults, err := strconv.Atoi(adultsPart)
	if err != nil || adults < 0 {
		return models.Distribution{}, fmt.Errorf("invalid room %q: adults must be a non-negative integer", value)
	}

	d := models.Distribution{Adults: adults}
	if !hasAges || strings.TrimSpace(agesPart) == "" {
		return d, nil
	}

	for _, raw := range strings.Split(agesPart, ",") {
		age, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || age < 0 {
			return models.Distribution{}, fmt.Errorf("invalid room %q: bad child age %q", value, raw)
		}
		d.ChildAges = append(d.ChildAges, age)
	}
	d.Children = len(d.ChildAges)

	return d, nil
}

func newReservationCmd(rt *cliEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservation",
		Short: "Inspect and cancel reservations",
	}
	cmd.AddCommand(newReservationGetCmd(rt))
	cmd.AddCommand(newReservationListCmd(rt))
	cmd.AddCommand(newReservationCancelCmd(rt))
	return cmd
}

func newReservationGetCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "get LOCATOR",
		Short: "Open a reservation by locator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd, rt, func(ctx context.Context, app *application) error {
				reservation, err := app.service.GetReservation(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), reservation)
			})
		},
	}
}

func newReservationListCmd(rt *cliEnv) *cobra.Command {
	var (
		limit    int
		page     int
		from     string
		to       string
		name     string
		surname  string
		passport string
	)

	c := &cobra.Command{
		Use:   "list",
		Short: "List reservations matching the filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := models.ReservationFilter{
				Limit:    limit,
				Page:     page,
				Name:     name,
				Surname:  surname,
				Passport: passport,
			}
			var err error
			if filter.From, err = parseOptionalCLIDate("--from", from); err != nil {
				return err
			}
			if filter.To, err = parseOptionalCLIDate("--to", to); err != nil {
				return err
			}

			return withApplication(cmd, rt, func(ctx context.Context, app *application) error {
				list, err := app.service.ListReservations(ctx, filter)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), list)
			})
		},
	}

	c.Flags().IntVar(&limit, "limit", 0, "maximum number of reservations")
	c.Flags().IntVar(&page, "page", 0, "page index, starting at 1")
	c.Flags().StringVar(&from, "from", "", "start date lower bound (YYYY-MM-DD)")
	c.Flags().StringVar(&to, "to", "", "start date upper bound (YYYY-MM-DD)")
	c.Flags().StringVar(&name, "name", "", "holder name")
	c.Flags().StringVar(&surname, "surname", "", "holder surname")
	c.Flags().StringVar(&passport, "passport", "", "holder passport")

	return c
}

func newReservationCancelCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel LOCATOR",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd, rt, func(ctx context.Context, app *application) error {
				cancellation, err := app.service.CancelReservation(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), cancellation)
			})
		},
	}
}

func newHotelCmd(rt *cliEnv) *cobra.Command {
	var zone, code string

	c := &cobra.Command{
		Use:   "hotel",
		Short: "Show static hotel information by zone or hotel code",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := models.HotelInfoQuery{ZoneCode: zone, HotelCode: code}
			return withApplication(cmd, rt, func(ctx context.Context, app *application) error {
				hotels, err := app.service.HotelInfo(ctx, query)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), hotels)
			})
		},
	}

	c.Flags().StringVar(&zone, "zone", "", "zone code")
	c.Flags().StringVar(&code, "code", "", "hotel code")
	c.MarkFlagsMutuallyExclusive("zone", "code")
	c.MarkFlagsOneRequired("zone", "code")

	return c
}

func parseOptionalCLIDate(flag, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse(cliDate, strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("%s must be YYYY-MM-DD: %w", flag, err)
	}
	return &t, nil
}
