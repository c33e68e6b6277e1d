package commands

import (
	"fmt"
	"time"

	"github.com/roomdesk/roomdesk/internal/cli/auth"
	"github.com/roomdesk/roomdesk/internal/cli/output"
	"github.com/spf13/cobra"
)

type identity struct {
	Server    string `json:"server" yaml:"server"`
	Mode      string `json:"mode" yaml:"mode"`
	Username  string `json:"username,omitempty" yaml:"username,omitempty"`
	Staff     bool   `json:"staff" yaml:"staff"`
	ExpiresAt string `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Expired   bool   `json:"expired" yaml:"expired"`
}

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd(opts ...Option) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show which credential is stored for the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(cmd, collect(opts))
		},
	}
}

func runWhoami(cmd *cobra.Command, o *options) error {
	e, err := newEnv(cmd, o)
	if err != nil {
		return err
	}

	id := identity{Server: e.baseURL, Mode: "anonymous"}
	creds := e.session.Credentials()

	switch {
	case creds.Access != "":
		id.Mode = "staff"
		if info, err := auth.InspectToken(creds.Access); err == nil && !info.ExpiresAt.IsZero() {
			id.ExpiresAt = info.ExpiresAt.UTC().Format(time.RFC3339)
			id.Expired = info.Expired(e.now())
		}
		if !id.Expired {
			profile, err := e.api.Profile(e.ctx(cmd))
			if err != nil {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			id.Username = profile.Username
			id.Staff = profile.IsStaff || profile.IsSuperuser
		}
	case creds.Email != "":
		id.Mode = "email"
	}

	return e.printer.Print(id, func() output.Table {
		rows := [][]string{
			{"server", id.Server},
			{"mode", id.Mode},
		}
		if id.Username != "" {
			rows = append(rows, []string{"username", id.Username}, []string{"staff", yesNo(id.Staff)})
		}
		if id.ExpiresAt != "" {
			rows = append(rows, []string{"expires", id.ExpiresAt}, []string{"expired", yesNo(id.Expired)})
		}
		return output.Table{Header: []string{"FIELD", "VALUE"}, Rows: rows}
	})
}
