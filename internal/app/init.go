package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/comiccards/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var (
		publicKey     string
		privateKeyEnv string
		clientIDEnv   string
		force         bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file",
		Long: `Write a comiccards config file.

Secrets never go into the file. The file names the environment variables
that hold them:
  • the Marvel private key (default MARVEL_PRIVATE_KEY)
  • the Imgur client id (default IMGUR_CLIENT_ID)

The Marvel public key may be stored in the file.`,
		Example: `  comiccards init --public-key 007bf0f305c7...
  comiccards init --private-key-env MY_MARVEL_SECRET --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			out := *cfg
			if publicKey != "" {
				out.Marvel.PublicKey = publicKey
			}
			if privateKeyEnv != "" {
				out.Marvel.PrivateKeyEnv = privateKeyEnv
			}
			if clientIDEnv != "" {
				out.Imgur.ClientIDEnv = clientIDEnv
			}

			if err := config.Save(&out, path); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			ok("Wrote %s", path)

			fmt.Println()
			fmt.Println("Next, export your secrets:")
			fmt.Printf("  %s\n", color.CyanString("export %s=<marvel private key>", out.Marvel.EffectivePrivateKeyEnv()))
			fmt.Printf("  %s\n", color.CyanString("export %s=<imgur client id>", out.Imgur.EffectiveClientIDEnv()))
			return nil
		},
	}

	cmd.Flags().StringVar(&publicKey, "public-key", "", "Marvel public API key")
	cmd.Flags().StringVar(&privateKeyEnv, "private-key-env", "", "Env var holding the Marvel private key")
	cmd.Flags().StringVar(&clientIDEnv, "client-id-env", "", "Env var holding the Imgur client id")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
