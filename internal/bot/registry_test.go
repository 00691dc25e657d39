package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

// stubModule is a test double for Module
type stubModule struct {
	name              string
	commands          []*discordgo.ApplicationCommand
	handlers          map[string]InteractionHandler
	componentHandlers map[string]InteractionHandler
	eventHandlers     []EventHandler
	initErr           error
	shutErr           error
}

func (m *stubModule) Name() string                                     { return m.name }
func (m *stubModule) Commands() []*discordgo.ApplicationCommand        { return m.commands }
func (m *stubModule) CommandHandlers() map[string]InteractionHandler   { return m.handlers }
func (m *stubModule) ComponentHandlers() map[string]InteractionHandler { return m.componentHandlers }
func (m *stubModule) EventHandlers() []EventHandler                    { return m.eventHandlers }
func (m *stubModule) Init(deps ModuleDependencies) error               { return m.initErr }
func (m *stubModule) Shutdown() error                                  { return m.shutErr }

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	mod := &stubModule{name: "test-module"}
	if err := reg.Register(mod); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	modules := reg.Modules()
	if len(modules) != 1 {
		t.Fatalf("expected 1 module, got %d", len(modules))
	}

	if modules[0].Name() != "test-module" {
		t.Errorf("expected module name %q, got %q", "test-module", modules[0].Name())
	}
}

func TestRegistry_RegisterMultiple(t *testing.T) {
	reg := NewRegistry()

	reg.MustRegister(
		&stubModule{name: "module-1"},
		&stubModule{name: "module-2"},
	)

	modules := reg.Modules()
	if len(modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(modules))
	}
}

func TestRegistry_RegisterDuplicateName(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(&stubModule{name: "dup"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Register(&stubModule{name: "dup"}); err == nil {
		t.Error("expected error for duplicate module name, got nil")
	}

	if len(reg.Modules()) != 1 {
		t.Errorf("expected duplicate to be rejected, got %d modules", len(reg.Modules()))
	}
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for duplicate module name")
		}
	}()

	NewRegistry().MustRegister(&stubModule{name: "dup"}, &stubModule{name: "dup"})
}

func TestRegistry_ModulesReturnsSnapshot(t *testing.T) {
	reg := NewRegistry()

	reg.MustRegister(&stubModule{name: "module-1"})

	modules := reg.Modules()

	// Register another module after getting snapshot
	reg.MustRegister(&stubModule{name: "module-2"})

	// Original snapshot should not be affected
	if len(modules) != 1 {
		t.Errorf("expected snapshot to have 1 module, got %d", len(modules))
	}
}
