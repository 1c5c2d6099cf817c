// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-crypt-keeper/internal/crypto"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

// mintedTokenSlack is added to the request timeout to get the lifetime of
// a token minted for a single invocation.
const mintedTokenSlack = time.Minute

var errRotationTimeout = errors.New("rotation did not finish in time")

func newVersionCommand(c *cli, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.newClient(*c.cfg, c.logger)
			if err != nil {
				return err
			}

			serverVersion, err := client.Version(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "cryptctl %s\nserver   %s\n", version, serverVersion)
			return nil
		},
	}
}

func newStatusCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the latest pool entry and how many records still need rotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			status, err := client.Status(cmd.Context())
			if err != nil {
				return err
			}

			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), status)
			}
			printStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func newPoolCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pool",
		Short: "List cipher pool entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			entries, err := client.Pool(cmd.Context())
			if err != nil {
				return err
			}

			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tALGORITHM\tSOURCE\tDATA\tCREATED BY\tCREATED AT")
			for _, e := range entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Algorithm, e.SecretSource.Type,
					e.SecretSource.Data, e.CreatedBy, e.CreatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}

func newRotateCommand(c *cli) *cobra.Command {
	var (
		req          models.RotationRequest
		sourceType   string
		wait         bool
		pollInterval time.Duration
		waitTimeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Add a new pool entry and re-encrypt all records with it",
		Long: `Registers a new cipher pool entry on the server and starts a rotation
campaign. The secret itself never leaves the server side: --data names the
environment variable or Vault path the server reads it from.`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if _, err := crypto.ParseCipherType(req.Algorithm); err != nil {
				return err
			}
			req.SecretSource.Type = models.SecretSourceType(sourceType)
			if !req.SecretSource.Type.IsValid() {
				return fmt.Errorf("unknown secret source %q", sourceType)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			accepted, err := client.Rotate(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.asJSON {
				if err = printJSON(out, accepted); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "rotation %s started, new pool entry %d\n", accepted.CampaignID, accepted.PoolID)
			}

			if !wait {
				return nil
			}

			status, err := waitForRotation(cmd.Context(), client.Status, pollInterval, waitTimeout)
			if err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(out, status)
			}
			printStatus(out, status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Algorithm, "algorithm", "a", string(crypto.CipherAESGCMSIV256), "Cipher of the new pool entry")
	cmd.Flags().StringVar(&sourceType, "source", string(models.SecretSourceEnvironmentVariable), "Secret source: NONE, ENVIRONMENT_VARIABLE or VAULT")
	cmd.Flags().StringVarP(&req.SecretSource.Data, "data", "d", "", "Variable name or Vault path of the new secret")
	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait until the campaign has finished")
	cmd.Flags().DurationVar(&pollInterval, "poll", 2*time.Second, "Status poll interval with --wait")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 30*time.Minute, "Give up waiting after this long")

	return cmd
}

// waitForRotation polls status until no campaign is running.
func waitForRotation(ctx context.Context, status func(context.Context) (models.EncryptionStatus, error),
	interval, timeout time.Duration,
) (models.EncryptionStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return models.EncryptionStatus{}, errRotationTimeout
		case <-ticker.C:
		}

		s, err := status(ctx)
		if err != nil {
			return models.EncryptionStatus{}, err
		}
		if !s.RotationRunning {
			return s, nil
		}
	}
}

func newConfigCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Store and reveal protected configuration values",
	}

	var req models.StoreConfigRequest
	store := &cobra.Command{
		Use:   "store NAME",
		Short: "Encrypt and store a value under NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			req.Name = args[0]
			stored, err := client.StoreConfig(cmd.Context(), req)
			if err != nil {
				return err
			}

			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), stored)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s stored as %s (pool entry %d)\n", stored.Name, stored.ID, stored.PoolID)
			return nil
		},
	}
	store.Flags().StringVar(&req.Value, "value", "", "Value to protect")
	_ = store.MarkFlagRequired("value")

	reveal := &cobra.Command{
		Use:   "reveal ID",
		Short: "Decrypt and print a stored value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			revealed, err := client.RevealConfig(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), revealed)
			}
			fmt.Fprintln(cmd.OutOrStdout(), revealed.Value)
			return nil
		},
	}

	cmd.AddCommand(store, reveal)
	return cmd
}

func printStatus(w io.Writer, s models.EncryptionStatus) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "latest pool entry:\t%d\n", s.LatestPoolID)
	fmt.Fprintf(tw, "outdated records:\t%d\n", s.OutdatedRecords)
	fmt.Fprintf(tw, "rotation running:\t%t\n", s.RotationRunning)
	for _, p := range s.Pools {
		fmt.Fprintf(tw, "  pool %d (%s):\t%d records\n", p.PoolID, p.Algorithm, p.Records)
	}
	if r := s.LastRotation; r != nil {
		fmt.Fprintf(tw, "last rotation:\t%s -> pool %d, %d rotated, %d failed, %d conflicts\n",
			r.CampaignID, r.TargetPoolID, r.Rotated, r.Failed, r.Conflicts)
	}
	_ = tw.Flush()
}
