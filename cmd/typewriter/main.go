package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"

	"github.com/treykane/typewriter/internal/app"
	"github.com/treykane/typewriter/internal/config"
	"github.com/treykane/typewriter/internal/logging"
	"github.com/treykane/typewriter/internal/session"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// options are the command line flags, for go-flags to parse into.
type options struct {
	Config  string `long:"config" value-name:"PATH" description:"Config file (default ~/.typewriter/config.yaml)"`
	Version bool   `short:"v" long:"version" description:"Print the version and exit"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "typewriter"
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 1
	}
	if opts.Version {
		fmt.Println(version)
		return 0
	}

	log := logging.New("main")

	configPath, err := resolveConfigPath(opts.Config)
	if err != nil {
		log.Warn("resolve config path", "error", err)
	}
	cfg, problems := config.Load(configPath)
	for _, problem := range problems {
		log.Warn("config value ignored", "path", configPath, "error", problem)
	}

	app.Version = version
	sess := session.New(cfg, configPath)
	p := tea.NewProgram(app.New(sess), tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Bubble Tea stops on SIGINT and SIGTERM itself; a closed terminal should
	// end the program the same way.
	hangup := make(chan os.Signal, 1)
	signal.Notify(hangup, syscall.SIGHUP)
	defer signal.Stop(hangup)
	go func() {
		<-hangup
		p.Quit()
	}()

	final, err := p.Run()
	if model, ok := final.(*app.Model); ok {
		if shutdownErr := model.Finish(); shutdownErr != nil {
			log.Error("shutdown", "error", shutdownErr)
		}
	}
	if err != nil {
		log.Error("run program", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// resolveConfigPath expands a --config value, or falls back to the default
// location. An empty result means settings are not persisted.
func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return config.ExpandHome(flagValue)
	}
	return config.DefaultPath()
}
