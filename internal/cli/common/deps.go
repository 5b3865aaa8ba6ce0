package common

import (
	"github.com/crmarques/viewstore/config"
	"github.com/crmarques/viewstore/container"
	"github.com/crmarques/viewstore/remote"
)

type CommandDependencies struct {
	Contexts  config.ContextService
	Container *container.Container
	Remote    remote.Gateway
}

func RequireContexts(deps CommandDependencies) (config.ContextService, error) {
	if deps.Contexts == nil {
		return nil, ValidationError("context service is not configured", nil)
	}
	return deps.Contexts, nil
}

func RequireContainer(deps CommandDependencies) (*container.Container, error) {
	if deps.Container == nil {
		return nil, ValidationError("state container is not configured", nil)
	}
	return deps.Container, nil
}

func RequireRemote(deps CommandDependencies) (remote.Gateway, error) {
	if deps.Remote == nil {
		return nil, ValidationError("remote gateway is not configured", nil)
	}
	return deps.Remote, nil
}
