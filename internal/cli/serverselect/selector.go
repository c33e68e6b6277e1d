package serverselect

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/roomdesk/roomdesk/internal/cli/config"
	"github.com/roomdesk/roomdesk/internal/cli/userconfig"
)

// ResolveServer determines which server to use based on the following priority:
// 1. If serverAlias flag is provided, use that server
// 2. If user has a selected server in their local state, use that. A selection
//    whose URL was edited in roomdesk.json is still found by its alias.
// 3. If only one server in project config, use that
// 4. Otherwise, prompt user to select a server interactively
func ResolveServer(projectConfig *config.Config, serverAlias string) (*config.Server, error) {
	// Priority 1: Use server alias if provided
	if serverAlias != "" {
		return projectConfig.GetServerByAlias(serverAlias)
	}

	// Priority 2: Use selected server from user state
	sel, err := userconfig.Selected()
	if err != nil {
		return nil, fmt.Errorf("failed to load user state: %w", err)
	}

	if sel.URL != "" {
		if server, err := projectConfig.GetServerByURL(sel.URL); err == nil {
			return server, nil
		}
		if sel.Alias != "" {
			if server, err := projectConfig.GetServerByAlias(sel.Alias); err == nil {
				remember(server)
				return server, nil
			}
		}
		// Selected server no longer exists in project config, clear it and continue
		_ = userconfig.ClearSelection()
	}

	// Priority 3: If only one server, use it automatically
	if len(projectConfig.Servers) == 1 {
		server := &projectConfig.Servers[0]
		remember(server)
		return server, nil
	}

	// Priority 4: Prompt user to select a server
	server, err := PromptServerSelection(projectConfig)
	if err != nil {
		return nil, err
	}
	remember(server)

	return server, nil
}

func remember(server *config.Server) {
	if err := userconfig.SelectServer(server.BaseURL(), server.Alias); err != nil {
		// Don't fail if we can't save, just continue
		fmt.Fprintf(os.Stderr, "Warning: failed to save selected server: %v\n", err)
	}
}

// PromptServerSelection shows an interactive prompt for the user to select a server
func PromptServerSelection(projectConfig *config.Config) (*config.Server, error) {
	if len(projectConfig.Servers) == 0 {
		return nil, fmt.Errorf("no servers configured in %s", config.ConfigFileName)
	}

	type serverOption struct {
		Label  string
		Server *config.Server
	}

	options := make([]serverOption, len(projectConfig.Servers))
	for i := range projectConfig.Servers {
		server := &projectConfig.Servers[i]
		options[i] = serverOption{
			Label:  fmt.Sprintf("%s (%s)", server.Alias, server.BaseURL()),
			Server: server,
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select a server",
		Items:     options,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server selection cancelled: %w", err)
	}

	return options[index].Server, nil
}

// GetServerByURLOrAlias finds a server by URL or alias
func GetServerByURLOrAlias(cfg *config.Config, urlOrAlias string) (*config.Server, error) {
	if server, err := cfg.GetServerByURL(urlOrAlias); err == nil {
		return server, nil
	}
	if server, err := cfg.GetServerByAlias(urlOrAlias); err == nil {
		return server, nil
	}
	return nil, fmt.Errorf("server with URL or alias '%s' not found", urlOrAlias)
}
