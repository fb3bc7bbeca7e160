package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/VERITAS-IO/dietech-client/internal/api"
	"github.com/VERITAS-IO/dietech-client/internal/config"
	"github.com/VERITAS-IO/dietech-client/internal/devserver"
	"github.com/VERITAS-IO/dietech-client/internal/domain/appointment"
	"github.com/VERITAS-IO/dietech-client/internal/domain/auth"
	"github.com/VERITAS-IO/dietech-client/internal/domain/diet"
	"github.com/VERITAS-IO/dietech-client/internal/domain/meal"
	"github.com/VERITAS-IO/dietech-client/internal/domain/nutrition"
	"github.com/VERITAS-IO/dietech-client/internal/querycache"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dietech",
		Short: "Dietech practice-management client",
	}
	rootCmd.PersistentFlags().String("username", "dietitian", "Account username")
	rootCmd.PersistentFlags().String("password", "dietitian1", "Account password")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(dietsCmd())
	rootCmd.AddCommand(mealsCmd())
	rootCmd.AddCommand(nutritionCmd())
	rootCmd.AddCommand(appointmentsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the in-memory development API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv := devserver.New(cfg, logger)
			go func() {
				if err := srv.Start(); err != nil {
					logger.Info().Err(err).Msg("dev server stopped")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			logger.Info().Msg("shutting down dev server")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
}

// session bundles everything a client command needs after login.
type session struct {
	client *api.Client
	cache  *querycache.Cache
	auth   *auth.Store
}

// connect loads the config, builds the SDK client and logs in with the
// credentials from the persistent flags.
func connect(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := auth.NewStore()
	client, err := api.New(cfg.APIBaseURL,
		api.WithTimeout(cfg.HTTPTimeout()),
		api.WithUnauthorizedHook(store.Clear),
	)
	if err != nil {
		return nil, err
	}

	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	svc := auth.NewService(client, store)
	if _, err := svc.Login(cmd.Context(), auth.LoginRequest{Username: username, Password: password}); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return &session{client: client, cache: querycache.New(), auth: store}, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func dietsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diets",
		Short: "Work with diet plans",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List diets",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			f := diet.DefaultFilters()
			f.Name, _ = cmd.Flags().GetString("name")
			page, err := diet.NewService(s.client, s.cache).Query(cmd.Context(), f)
			if err != nil {
				return err
			}
			return printJSON(page)
		},
	}
	listCmd.Flags().String("name", "", "Filter by name")
	cmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a diet with its meals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if _, err := fmt.Sscan(args[0], &id); err != nil {
				return fmt.Errorf("invalid diet id %q", args[0])
			}
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			detail, err := diet.NewService(s.client, s.cache).Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(detail)
		},
	}
	cmd.AddCommand(getCmd)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a diet",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			req := diet.CreateDietRequest{}
			req.Name, _ = cmd.Flags().GetString("name")
			dietType, _ := cmd.Flags().GetString("type")
			req.DietType = diet.Type(dietType)
			req.DietDuration, _ = cmd.Flags().GetInt("duration")
			req.TotalCalories, _ = cmd.Flags().GetInt("calories")
			req.StartDate = time.Now().UTC()
			req.EndDate = req.StartDate.AddDate(0, 0, req.DietDuration)
			req.IsActive = true

			id, err := diet.NewService(s.client, s.cache).Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(map[string]int64{"id": id})
		},
	}
	createCmd.Flags().String("name", "", "Diet name")
	createCmd.Flags().String("type", "maintenance", "Diet type")
	createCmd.Flags().Int("duration", 30, "Duration in days")
	createCmd.Flags().Int("calories", 2000, "Daily calorie target")
	cmd.AddCommand(createCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a diet and its meals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id int64
			if _, err := fmt.Sscan(args[0], &id); err != nil {
				return fmt.Errorf("invalid diet id %q", args[0])
			}
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			return diet.NewService(s.client, s.cache).Delete(cmd.Context(), id)
		},
	}
	cmd.AddCommand(deleteCmd)

	return cmd
}

func mealsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "meals",
		Short: "Work with meals",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List meals",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			f := meal.DefaultFilters()
			f.DietID, _ = cmd.Flags().GetInt64("diet")
			page, err := meal.NewService(s.client, s.cache).Query(cmd.Context(), f)
			if err != nil {
				return err
			}
			return printJSON(page)
		},
	}
	listCmd.Flags().Int64("diet", 0, "Filter by diet id")
	cmd.AddCommand(listCmd)

	return cmd
}

func nutritionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nutrition",
		Short: "Work with nutrition-info records",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List nutrition-info records",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			page, err := nutrition.NewService(s.client, s.cache).Query(cmd.Context(), nutrition.DefaultFilters())
			if err != nil {
				return err
			}
			return printJSON(page)
		},
	}
	cmd.AddCommand(listCmd)

	return cmd
}

func appointmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Work with appointments",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := connect(cmd)
			if err != nil {
				return err
			}
			f := appointment.DefaultFilters()
			if from, _ := cmd.Flags().GetString("from"); from != "" {
				t, err := time.Parse(time.RFC3339, from)
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				f.From = t
			}
			if to, _ := cmd.Flags().GetString("to"); to != "" {
				t, err := time.Parse(time.RFC3339, to)
				if err != nil {
					return fmt.Errorf("invalid --to: %w", err)
				}
				f.To = t
			}
			page, err := appointment.NewService(s.client, s.cache).Query(cmd.Context(), f)
			if err != nil {
				return err
			}
			return printJSON(page)
		},
	}
	listCmd.Flags().String("from", "", "Range start (RFC3339)")
	listCmd.Flags().String("to", "", "Range end (RFC3339)")
	cmd.AddCommand(listCmd)

	return cmd
}
