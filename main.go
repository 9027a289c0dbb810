package main

import (
	"flag"
	"fmt"
	"os"

	"octodash-cli/api"
	"octodash-cli/auth"
	"octodash-cli/commands"
	"octodash-cli/config"
	"octodash-cli/logger"
	"octodash-cli/supabase"
	"octodash-cli/tui/controller"
	"octodash-cli/tui/login"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// version is overridden via -ldflags in release builds
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	log := logger.New()
	logPath, err := config.DefaultLogPath()
	if err != nil {
		return err
	}
	if err := log.Init(env.LogLevel, logPath); err != nil {
		return err
	}
	defer func() { _ = log.Log.Sync() }()

	configPath, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}
	manager := config.NewConfigManager(configPath)
	manager.SetProvider(env.Provider)

	provider, err := newAuthProvider(env)
	if err != nil {
		return err
	}
	repo := auth.NewLoginRepository(provider, manager, manager, log.Log)

	if len(args) == 0 {
		return runTUI(repo, manager, log.Log)
	}

	switch args[0] {
	case "login":
		cmd := commands.NewLoginCmd(repo, log.Log, os.Stdin, os.Stdout)
		fs := flag.NewFlagSet("login", flag.ContinueOnError)
		fs.StringVar(&cmd.Username, "u", "", "Username for login")
		fs.StringVar(&cmd.Password, "p", "", "Personal access token or password")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return cmd.Execute(fs.Args())
	case "whoami":
		return commands.NewWhoamiCmd(manager, os.Stdout).Execute(args[1:])
	case "logout":
		return commands.NewLogoutCmd(manager, os.Stdout).Execute(args[1:])
	case "version":
		fmt.Println(version)
		return nil
	default:
		return fmt.Errorf("unknown command %q (want login, whoami, logout or version)", args[0])
	}
}

func newAuthProvider(env config.Env) (auth.AuthProvider, error) {
	switch env.Provider {
	case config.ProviderSupabase:
		client, err := supabase.NewSupabaseClient(env.SupabaseURL, env.SupabaseKey)
		if err != nil {
			return nil, err
		}
		return auth.NewSupabaseAuth(client), nil
	default:
		return auth.NewGitHubAuth(api.NewClient(env.BaseURL)), nil
	}
}

func runTUI(repo login.Repository, manager *config.ConfigManager, log *zap.Logger) error {
	vm := login.NewViewModel(repo, login.WithLogger(log))
	defer vm.Close()

	p := tea.NewProgram(controller.New(vm, manager, version, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("tui exited", zap.Error(err))
		return err
	}
	return nil
}
