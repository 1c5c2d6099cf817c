package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-crypt-keeper/internal/adapter"
	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
)

// defaultOperator is the token subject used when --operator is not given
// and $USER is empty.
const defaultOperator = "cryptctl"

type clientFactory func(cfg config.CLIConfig, log *logger.Logger) (adapter.AdminClient, error)

// cli is the state shared by all commands of one invocation.
type cli struct {
	overrides config.CLIConfig
	operator  string
	asJSON    bool

	cfg       *config.CLIConfig
	newClient clientFactory
	logger    *logger.Logger
}

// NewRootCommand creates the cryptctl root command with all subcommands.
func NewRootCommand(version string, log *logger.Logger) *cobra.Command {
	return newRootCommand(&cli{newClient: adapter.NewHTTPAdminClient, logger: log}, version)
}

func newRootCommand(c *cli, version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "cryptctl [flags] command [flags]",
		Short:   "Admin tool for go-crypt-keeper",
		Long:    "Inspects the cipher pool of a go-crypt-keeper server, starts key rotations and mints admin tokens.",
		Version: version,

		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.GetCLIConfig(c.overrides)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.overrides.ServerAddress, "server", "s", "", "Server base URL (env CRYPTCTL_SERVER)")
	flags.StringVarP(&c.overrides.Token, "token", "t", "", "Admin bearer token (env CRYPTCTL_TOKEN)")
	flags.StringVar(&c.overrides.TokenSignKey, "sign-key", "", "Key to mint a token when none is given (env CRYPTCTL_TOKEN_SIGN_KEY)")
	flags.StringVar(&c.overrides.TokenIssuer, "issuer", "", "Issuer of minted tokens (env CRYPTCTL_TOKEN_ISSUER)")
	flags.DurationVar(&c.overrides.RequestTimeout, "timeout", 0, "Request timeout (env CRYPTCTL_REQUEST_TIMEOUT)")
	flags.StringVarP(&c.operator, "operator", "o", "", "Operator name put into minted tokens, defaults to $USER")
	flags.BoolVar(&c.asJSON, "json", false, "Print raw JSON")

	root.AddCommand(
		newVersionCommand(c, version),
		newStatusCommand(c),
		newPoolCommand(c),
		newRotateCommand(c),
		newConfigCommand(c),
		newTokenCommand(c),
		newNonceCommand(),
		newSecretCommand(c),
	)

	return root
}

func (c *cli) operatorName() string {
	if c.operator != "" {
		return c.operator
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return defaultOperator
}

// client returns an admin client. Without a configured token one is
// minted from the sign key.
func (c *cli) client() (adapter.AdminClient, error) {
	client, err := c.newClient(*c.cfg, c.logger)
	if err != nil {
		return nil, err
	}

	if client.Token() == "" && c.cfg.TokenSignKey != "" {
		token, err := utils.GenerateJWTToken(c.cfg.TokenIssuer, c.operatorName(), c.cfg.RequestTimeout+mintedTokenSlack, c.cfg.TokenSignKey)
		if err != nil {
			return nil, fmt.Errorf("minting token: %w", err)
		}
		client.SetToken(token.SignedString)
	}

	return client, nil
}
