package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/playground/internal/config"
	"github.com/leighmacdonald/playground/internal/registry"
)

var errUnknownRoute = errors.New("unknown route")

// screen is a full page model. Only the screen on top of the stack receives input.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (screen, tea.Cmd)
	View() string
	Title() string
}

// screenFactory mounts a fresh screen instance for a registry entry.
type screenFactory func(entry registry.NavEntry, conf config.Config) (screen, error)

type screenStack struct {
	items []screen
}

func (s *screenStack) push(item screen) {
	if item == nil {
		return
	}

	s.items = append(s.items, item)
}

func (s *screenStack) pop() screen {
	if len(s.items) == 0 {
		return nil
	}

	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return last
}

func (s *screenStack) top() screen {
	if len(s.items) == 0 {
		return nil
	}

	return s.items[len(s.items)-1]
}

// replaceTop swaps in the updated model returned by the top screen's Update.
func (s *screenStack) replaceTop(item screen) {
	if len(s.items) == 0 {
		return
	}

	s.items[len(s.items)-1] = item
}

func (s *screenStack) len() int {
	return len(s.items)
}

// router resolves navigation intents into mounted screens.
type router struct {
	factories map[registry.Route]screenFactory
	fallback  screenFactory
}

func newRouter() *router {
	return &router{
		factories: map[registry.Route]screenFactory{},
		fallback:  newPlaceholderScreen,
	}
}

func (r *router) register(route registry.Route, factory screenFactory) *router {
	r.factories[route] = factory

	return r
}

// open mounts the screen for route. Entries without a dedicated screen get a placeholder.
func (r *router) open(route registry.Route, conf config.Config) (screen, error) {
	entry, found := registry.Lookup(route)
	if !found {
		return nil, fmt.Errorf("%w: %s", errUnknownRoute, route)
	}

	factory, found := r.factories[route]
	if !found {
		factory = r.fallback
	}

	return factory(entry, conf)
}
