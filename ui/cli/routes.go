// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rutero-app/rutero/internal/api"
	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/model"
)

const routeDateLayout = "2006-01-02"

func newRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Plan and manage your itineraries",
	}
	cmd.AddCommand(
		newRoutesListCmd(),
		newRoutesShowCmd(),
		newRoutesCreateCmd(),
		newRoutesAddSpotCmd(),
		newRoutesDeleteCmd(),
	)
	return cmd
}

func newRoutesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			routes, err := apiClient.Routes.Mine(cmd.Context())
			if err != nil {
				return err
			}
			if len(routes) == 0 {
				fmt.Println(i18n.T("routes.none"))
				return nil
			}
			for _, route := range routes {
				fmt.Printf("%4d  %s  (%s .. %s, %d stops)\n",
					route.ID, route.Name, route.DateStart, route.DateEnd, len(route.ActivityRoutes))
			}
			return nil
		},
	}
}

func newRoutesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a route and its scheduled stops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid route id %q", args[0])
			}

			route, err := apiClient.Routes.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s  (%s .. %s)\n", route.Name, route.DateStart, route.DateEnd)
			if route.Description != "" {
				fmt.Printf("  %s\n", truncate(route.Description, 400))
			}
			printStops(route.ActivityRoutes)
			return nil
		},
	}
}

func newRoutesCreateCmd() *cobra.Command {
	var (
		description string
		dateStart   string
		dateEnd     string
		automatic   bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a route, optionally letting the server plan it",
		Long: `Create a route. With --automatic the server generates a schedule from
your preferred activities; the plan is shown and you accept or discard it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			if _, err := time.Parse(routeDateLayout, dateStart); err != nil {
				return fmt.Errorf("invalid start date %q, want YYYY-MM-DD", dateStart)
			}
			if _, err := time.Parse(routeDateLayout, dateEnd); err != nil {
				return fmt.Errorf("invalid end date %q, want YYYY-MM-DD", dateEnd)
			}

			params := api.RouteParams{
				Name:        args[0],
				Description: description,
				DateStart:   dateStart,
				DateEnd:     dateEnd,
			}
			route, err := apiClient.Routes.Create(cmd.Context(), params)
			if err != nil {
				return err
			}

			if !automatic {
				fmt.Println(i18n.Td("routes.created", map[string]interface{}{"ID": route.ID}))
				return nil
			}

			plan, err := apiClient.Routes.Activities(cmd.Context(), route.ID)
			if err != nil {
				// The shell exists but has no plan; drop it rather than
				// leave an empty route behind.
				_ = apiClient.Routes.Delete(cmd.Context(), route.ID)
				return err
			}
			printStops(plan)

			if !confirm(i18n.T("routes.plan_confirm")) {
				if err := apiClient.Routes.Delete(cmd.Context(), route.ID); err != nil {
					return err
				}
				fmt.Println(i18n.Td("routes.plan_rejected", map[string]interface{}{"ID": route.ID}))
				return nil
			}

			params.ActivityRoutes = plan
			if _, err := apiClient.Routes.Update(cmd.Context(), route.ID, params); err != nil {
				return err
			}
			fmt.Println(i18n.Td("routes.plan_accepted", map[string]interface{}{"ID": route.ID}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Route description")
	cmd.Flags().StringVar(&dateStart, "from", "", "Start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&dateEnd, "to", "", "End date, YYYY-MM-DD (required)")
	cmd.Flags().BoolVar(&automatic, "automatic", false, "Let the server generate the schedule")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newRoutesAddSpotCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add-spot <route-id> <spot-id>",
		Short: "Add a spot to an existing route",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			routeID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid route id %q", args[0])
			}
			spotID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid spot id %q", args[1])
			}

			route, err := apiClient.Routes.Get(cmd.Context(), routeID)
			if err != nil {
				return err
			}
			if date == "" {
				date = route.DateStart
			} else if _, err := time.Parse(routeDateLayout, date); err != nil {
				return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
			}

			stops := append(route.ActivityRoutes, model.ActivityRoute{
				Date:        date,
				TouristSpot: spotID,
			})
			params := api.RouteParams{
				Name:           route.Name,
				Description:    route.Description,
				DateStart:      route.DateStart,
				DateEnd:        route.DateEnd,
				ActivityRoutes: stops,
			}
			if _, err := apiClient.Routes.Update(cmd.Context(), routeID, params); err != nil {
				return err
			}
			fmt.Println(i18n.Td("routes.updated", map[string]interface{}{"ID": routeID}))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to schedule the visit on (defaults to the route's start date)")
	return cmd
}

func newRoutesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid route id %q", args[0])
			}
			if err := apiClient.Routes.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println(i18n.Td("routes.deleted", map[string]interface{}{"ID": id}))
			return nil
		},
	}
}

func printStops(stops []model.ActivityRoute) {
	for _, stop := range stops {
		name := fmt.Sprintf("spot %d", stop.TouristSpot)
		if stop.Spot != nil {
			name = stop.Spot.Name
		}
		if stop.Activity != "" {
			name += " (" + stop.Activity + ")"
		}
		fmt.Printf("  %s  %s\n", stop.Date, name)
	}
}

// confirm asks a yes/no question on stdin. Anything but y/yes is a no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}
