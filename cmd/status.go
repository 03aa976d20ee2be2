package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	statusadapter "github.com/bnema/bilibili-accounts-cli/internal/adapters/render/status"
	"github.com/bnema/bilibili-accounts-cli/internal/application"
	"github.com/bnema/bilibili-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

const defaultStaleAfter = 30 * 24 * time.Hour

type profileStatusJSON struct {
	Profile    string     `json:"profile"`
	SessData   string     `json:"sessdata"`
	BiliJct    string     `json:"bili_jct,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	AgeSeconds int64      `json:"age_seconds,omitempty"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool
	var staleAfter time.Duration

	cmd := &cobra.Command{
		Use:   "status",
		Short: "List stored credential profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := app.service.Status(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(statusesJSON(statuses))
			}

			rendered, err := app.statusRenderer(statuses, statusadapter.RenderOptions{
				StorePath:  app.store.Path(),
				StaleAfter: staleAfter,
			})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().DurationVar(&staleAfter, "stale-after", defaultStaleAfter, "Mark credentials older than this as stale")

	return cmd
}

func statusesJSON(statuses []application.ProfileStatus) []profileStatusJSON {
	out := make([]profileStatusJSON, 0, len(statuses))
	for _, status := range statuses {
		item := profileStatusJSON{
			Profile:  string(status.Summary.Name),
			SessData: domain.MaskSecret(status.Summary.Credential.SessData),
			BiliJct:  domain.MaskSecret(status.Summary.Credential.BiliJct),
		}
		if !status.Summary.UpdatedAt.IsZero() {
			updatedAt := status.Summary.UpdatedAt
			item.UpdatedAt = &updatedAt
			item.AgeSeconds = int64(status.Age / time.Second)
		}
		out = append(out, item)
	}
	return out
}
