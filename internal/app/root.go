package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/comiccards/internal/config"
	"github.com/blackwell-systems/comiccards/internal/endpoint"
	"github.com/blackwell-systems/comiccards/internal/imgur"
	"github.com/blackwell-systems/comiccards/internal/marvel"
	"github.com/blackwell-systems/comiccards/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	flagNoColor       bool
	flagNoInteractive bool
	flagConfig        string
)

var rootCmd = &cobra.Command{
	Use:   "comiccards",
	Short: "Browse this week's comics and share them as cards",
	Long: `comiccards lists the comics that went on sale in the last week,
renders any of them as a card, and uploads the card to Imgur so it can be
shared. Uploaded cards can be deleted again with the token printed after
upload.

Credentials are read from the environment:
  MARVEL_PUBLIC_KEY, MARVEL_PRIVATE_KEY   catalog API key pair
  IMGUR_CLIENT_ID                         image host client id

Run 'comiccards' with no arguments to launch the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComics(cmd, "")
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/comiccards/config.yml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.LoadFile(configPath())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	}

	rootCmd.AddCommand(
		newComicsCmd(),
		newCardCmd(),
		newUploadCmd(),
		newDeleteCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
}

func configPath() string {
	if flagConfig != "" {
		return config.ExpandHome(flagConfig)
	}
	return config.Path()
}

func newExecutor() *endpoint.Client {
	return endpoint.New(nil)
}

// catalogClient builds the Marvel client from config.
func catalogClient() (*marvel.Client, error) {
	if err := cfg.ValidateMarvel(); err != nil {
		return nil, fmt.Errorf("%w: set MARVEL_PUBLIC_KEY and %s",
			err, cfg.Marvel.EffectivePrivateKeyEnv())
	}
	catalog, err := marvel.NewCatalog(marvel.Credentials{
		PublicKey:  cfg.Marvel.PublicKey,
		PrivateKey: cfg.Marvel.PrivateKey,
	}, marvel.WithBaseURL(cfg.Marvel.APIBase))
	if err != nil {
		return nil, err
	}
	return marvel.NewClient(catalog, newExecutor()), nil
}

// imageClient builds the Imgur client from config.
func imageClient() (*imgur.Client, error) {
	if err := cfg.ValidateImgur(); err != nil {
		return nil, fmt.Errorf("%w: set %s", err, cfg.Imgur.EffectiveClientIDEnv())
	}
	host, err := imgur.NewHost(cfg.Imgur.ClientID, cfg.Imgur.APIBase)
	if err != nil {
		return nil, err
	}
	return imgur.NewClient(host, newExecutor()), nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}
