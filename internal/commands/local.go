package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/internal/secret"
	"github.com/MKhiriev/go-crypt-keeper/internal/utils"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

var errNoSignKey = errors.New("token sign key is required (--sign-key or CRYPTCTL_TOKEN_SIGN_KEY)")

func newTokenCommand(c *cli) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.cfg.TokenSignKey == "" {
				return errNoSignKey
			}

			token, err := utils.GenerateJWTToken(c.cfg.TokenIssuer, c.operatorName(), duration, c.cfg.TokenSignKey)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.String())
			return nil
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", time.Hour, "Token lifetime")

	return cmd
}

func newNonceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nonce",
		Short: "Print a random base64 nonce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nonce, err := crypto.GenerateNonce()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), nonce.String())
			return nil
		},
	}
}

func newSecretCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage pool secrets",
	}

	var (
		algorithm string
		encoding  string
		vaultPath string
	)

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random secret for a cipher",
		Long: `Generates a secret of the key length of --algorithm. The secret is printed,
or written to the "value" field of --vault-path when given. Pool secrets
must stay base64 to be readable by the server.`,
		Aliases: []string{"gen"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cipherType, err := crypto.ParseCipherType(algorithm)
			if err != nil {
				return err
			}
			enc, err := models.ParseEncoding(encoding)
			if err != nil {
				return err
			}

			value, err := crypto.GenerateSecret(cipherType)
			if err != nil {
				return err
			}
			value = value.WithEncoding(enc)

			if vaultPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), value.String())
				return nil
			}

			client, err := secret.NewVaultClient(c.cfg.Vault)
			if err != nil {
				return err
			}
			kv := secret.NewKVStore(client, c.cfg.Vault.Mount)
			if err = kv.WriteSecret(cmd.Context(), vaultPath, value.WithEncoding(models.EncodingBase64).String()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "secret written to %s\n", kv.StoragePath(vaultPath))
			return nil
		},
	}
	generate.Flags().StringVarP(&algorithm, "algorithm", "a", string(crypto.CipherAESGCMSIV256), "Cipher the secret is for")
	generate.Flags().StringVarP(&encoding, "encoding", "e", models.EncodingBase64.String(), "Output encoding: BASE64 or HEX")
	generate.Flags().StringVar(&vaultPath, "vault-path", "", "Write the secret to this KV v2 path instead of printing it")

	cmd.AddCommand(generate)
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
