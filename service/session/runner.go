package session

import (
	"context"
	"strings"

	"github.com/viant/afs/url"
	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
	rssh "github.com/viant/gosh/runner/ssh"
	"github.com/viant/scy/cred/secret"
	"golang.org/x/crypto/ssh"
)

// Runner executes a command inside a live host process and returns its
// combined output and exit status.
type Runner interface {
	Run(ctx context.Context, command string) (string, int, error)
	Close() error
}

// Host locates the process host a session runs against.
type Host struct {
	URL         string            `json:"url"`
	Credentials string            `json:"credentials,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
}

// RunnerFactory creates a runner for a new session.
type RunnerFactory func(ctx context.Context, host *Host) (Runner, error)

// NewGoshRunner starts a shell-backed runner, local for localhost hosts
// and over SSH otherwise.
func NewGoshRunner(ctx context.Context, host *Host) (Runner, error) {
	if host == nil {
		host = &Host{URL: "localhost"}
	}
	envOptions := []runner.Option{}
	if len(host.Env) > 0 {
		envOptions = append(envOptions, runner.WithEnvironment(host.Env))
	}
	var service *gosh.Service
	var err error
	if hostName := url.Host(host.URL); hostName == "" || hostName == "localhost" {
		service, err = gosh.New(ctx, local.New(envOptions...))
	} else {
		config, cErr := getSSHConfig(ctx, host)
		if cErr != nil {
			return nil, cErr
		}
		sshHost := hostName
		if !strings.Contains(sshHost, ":") {
			sshHost += ":22"
		}
		service, err = gosh.New(ctx, rssh.New(sshHost, config, envOptions...))
	}
	if err != nil {
		return nil, err
	}
	return &goshRunner{service: service}, nil
}

type goshRunner struct {
	service *gosh.Service
}

func (r *goshRunner) Run(ctx context.Context, command string) (string, int, error) {
	return r.service.Run(ctx, command)
}

func (r *goshRunner) Close() error {
	return r.service.Close()
}

func getSSHConfig(ctx context.Context, host *Host) (*ssh.ClientConfig, error) {
	credentials := host.Credentials
	if credentials == "" {
		credentials = "localhost"
	}
	secrets := secret.New()
	generic, err := secrets.GetCredentials(ctx, credentials)
	if err != nil {
		return nil, err
	}
	return generic.SSH.Config(ctx)
}
