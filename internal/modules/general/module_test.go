package general

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/starterbot/internal/bot"
	"github.com/sglre6355/starterbot/internal/modules/general/presentation"
	"github.com/sglre6355/starterbot/internal/shutdown"
)

func unsetModuleEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ADMIN_USER_IDS", "SHUTDOWN_DENIAL_TTL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGeneralModule_LoadConfig_Defaults(t *testing.T) {
	unsetModuleEnv(t)

	m := NewModule()
	if err := m.LoadConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.config.AdminUserIDs) != 0 {
		t.Errorf("expected no admins, got %v", m.config.AdminUserIDs)
	}
	if m.config.ShutdownDenialTTL != 5*time.Second {
		t.Errorf("expected 5s denial TTL, got %v", m.config.ShutdownDenialTTL)
	}
}

func TestGeneralModule_LoadConfig_AdminIDs(t *testing.T) {
	unsetModuleEnv(t)
	t.Setenv("ADMIN_USER_IDS", "165216105197993984,42")
	t.Setenv("SHUTDOWN_DENIAL_TTL", "250ms")

	m := NewModule()
	if err := m.LoadConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []snowflake.ID{165216105197993984, 42}
	if len(m.config.AdminUserIDs) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, m.config.AdminUserIDs)
	}
	for i, id := range expected {
		if m.config.AdminUserIDs[i] != id {
			t.Errorf("expected admin %d at position %d, got %d", id, i, m.config.AdminUserIDs[i])
		}
	}
	if m.config.ShutdownDenialTTL != 250*time.Millisecond {
		t.Errorf("expected 250ms denial TTL, got %v", m.config.ShutdownDenialTTL)
	}
}

func TestGeneralModule_LoadConfig_MalformedAdminID(t *testing.T) {
	unsetModuleEnv(t)
	t.Setenv("ADMIN_USER_IDS", "123,not-an-id")

	if err := NewModule().LoadConfig(); err == nil {
		t.Error("expected error for malformed admin ID, got nil")
	}
}

func TestGeneralModule_LoadConfig_ZeroAdminID(t *testing.T) {
	unsetModuleEnv(t)
	t.Setenv("ADMIN_USER_IDS", "123,0")

	err := NewModule().LoadConfig()
	if err == nil || !strings.Contains(err.Error(), ErrZeroAdminID.Error()) {
		t.Errorf("expected zero admin ID error, got %v", err)
	}
}

func TestGeneralModule_Init_RequiresShutdownRequester(t *testing.T) {
	unsetModuleEnv(t)

	if err := NewModule().Init(bot.ModuleDependencies{}); err == nil {
		t.Error("expected error without shutdown requester, got nil")
	}
}

func TestGeneralModule_HandlersMatchCommands(t *testing.T) {
	unsetModuleEnv(t)

	sender, _ := shutdown.New()
	m := NewModule()
	if err := m.Init(bot.ModuleDependencies{Shutdown: sender}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := bot.NewRouter()
	for name, handler := range m.CommandHandlers() {
		if handler == nil {
			t.Errorf("expected handler for %q", name)
		}
		if err := router.HandleCommand(name, handler); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := router.Validate(m.Commands()); err != nil {
		t.Errorf("expected commands and handlers to match: %v", err)
	}

	if _, ok := m.ComponentHandlers()[presentation.RefreshPingCustomID]; !ok {
		t.Error("expected refresh_ping component handler")
	}
}

func TestGeneralModule_ShutdownThroughRouter(t *testing.T) {
	unsetModuleEnv(t)

	sender, _ := shutdown.New()
	m := NewModule()
	if err := m.Init(bot.ModuleDependencies{Shutdown: sender}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	router := bot.NewRouter()
	for name, handler := range m.CommandHandlers() {
		_ = router.HandleCommand(name, handler)
	}

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: presentation.CommandShutdown},
		User: &discordgo.User{ID: "42", Username: "someone"},
	}}
	if err := router.Dispatch(nil, i, &bot.MockResponder{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.State() != shutdown.ShuttingDown {
		t.Errorf("expected shutting_down state, got %s", sender.State())
	}
}
