package cli

import (
	"fmt"

	"courseplatform/pkg/coursetree"
	"courseplatform/pkg/logger"
	"courseplatform/services/studio-cli/internal/api"
	"courseplatform/services/studio-cli/internal/config"
	"courseplatform/services/studio-cli/internal/draft"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// App - общее состояние команд. Tokens подменяется в тестах.
type App struct {
	Tokens coursetree.TokenSource

	v      *viper.Viper
	cfg    config.Config
	log    *logger.Logger
	drafts *draft.Store
}

func (a *App) client() *api.Client {
	token := a.cfg.Token
	if token == "" {
		token = a.drafts.Token()
	}
	return api.New(a.cfg.APIURL, token, a.log)
}

func (a *App) init(configDir string) error {
	cfg, err := config.Load(a.v, configDir)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}
	a.cfg = cfg

	a.log = logger.Nop()
	if cfg.LogMode != "off" {
		if a.log, err = logger.New(cfg.LogMode); err != nil {
			return err
		}
	}
	a.drafts = draft.NewStore(cfg.DraftDir)
	return nil
}

func NewRootCmd(app *App) *cobra.Command {
	app.v = config.New()
	var configDir string

	root := &cobra.Command{
		Use:   "studio",
		Short: "Course structure editor for the course platform",
		Long: `studio edits the session and lesson tree of a course offline.
Pull the structure into a local draft, edit it with the structure commands
and save it back in one request; the server reconciles the whole tree.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(configDir)
		},
	}

	root.PersistentFlags().StringVar(&configDir, "config-dir", config.DefaultDir(), "directory with app.env")
	root.PersistentFlags().String("api-url", "", "api gateway base url")
	root.PersistentFlags().String("drafts", "", "directory for local drafts")
	root.PersistentFlags().String("log", "", "log mode: off, dev or prod")
	app.v.BindPFlag("API_URL", root.PersistentFlags().Lookup("api-url"))
	app.v.BindPFlag("DRAFT_DIR", root.PersistentFlags().Lookup("drafts"))
	app.v.BindPFlag("LOG_MODE", root.PersistentFlags().Lookup("log"))

	root.AddCommand(newLoginCmd(app), newStructureCmd(app))
	return root
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as an admin and remember the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.client().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := app.drafts.SaveToken(token); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in as", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}
