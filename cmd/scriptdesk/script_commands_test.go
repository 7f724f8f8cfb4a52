package main

import "testing"

func TestScriptLoadShowClear(t *testing.T) {
	env := setupCLITestEnv(t)
	fixture := writeScriptFixture(t)

	out, _, err := runCLI(t, []string{"script", "load", fixture}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("script load: %v", err)
	}
	requireContains(t, out, "2 clusters, 3 dialogues, 2 participants")

	out, _, err = runCLI(t, []string{"script", "show"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("script show: %v", err)
	}
	requireContains(t, out, "c1")
	requireContains(t, out, "c2")

	out, _, err = runCLI(t, []string{"script", "show", "--full"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("script show --full: %v", err)
	}
	requireContains(t, out, "Maya")

	out, _, err = runCLI(t, []string{"script", "clear"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("script clear: %v", err)
	}
	requireContains(t, out, "Script cleared")

	out, _, err = runCLI(t, []string{"script", "show"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("script show after clear: %v", err)
	}
	requireContains(t, out, "No script loaded")
}

func TestDialogueUpdateCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	fixture := writeScriptFixture(t)

	if _, _, err := runCLI(t, []string{"script", "load", fixture}, env.socketPath, env.configPath); err != nil {
		t.Fatalf("script load: %v", err)
	}

	out, _, err := runCLI(t, []string{"dialogue", "update", "c1", "1", "--text", "Revised line"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("dialogue update: %v", err)
	}
	requireContains(t, out, "Updated c1/1: Revised line")

	_, _, err = runCLI(t, []string{"dialogue", "update", "missing", "1", "--text", "x"}, env.socketPath, env.configPath)
	if err == nil {
		t.Fatal("expected unknown cluster to fail")
	}

	_, _, err = runCLI(t, []string{"dialogue", "update", "c1", "1"}, env.socketPath, env.configPath)
	if err == nil {
		t.Fatal("expected error when no patch flags are passed")
	}
}

func TestViewCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	fixture := writeScriptFixture(t)

	if _, _, err := runCLI(t, []string{"script", "load", fixture}, env.socketPath, env.configPath); err != nil {
		t.Fatalf("script load: %v", err)
	}

	out, _, err := runCLI(t, []string{"view", "select", "c1"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("view select: %v", err)
	}
	requireContains(t, out, "Selected cluster c1")

	out, _, err = runCLI(t, []string{"view", "toggle", "c1"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("view toggle: %v", err)
	}
	requireContains(t, out, "Cluster c1 is now expanded")

	out, _, err = runCLI(t, []string{"view", "search", "quantum"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("view search: %v", err)
	}
	requireContains(t, out, `Searching for "quantum"`)

	out, _, err = runCLI(t, []string{"view", "state"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("view state: %v", err)
	}
	requireContains(t, out, "Selected: c1")
	requireContains(t, out, "Expanded: c1")
	requireContains(t, out, `Search:   "quantum"`)

	out, _, err = runCLI(t, []string{"view", "expand-all"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("view expand-all: %v", err)
	}
	requireContains(t, out, "Expanded 2 clusters")

	out, _, err = runCLI(t, []string{"view", "collapse-all"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("view collapse-all: %v", err)
	}
	requireContains(t, out, "Collapsed all clusters")

	out, _, err = runCLI(t, []string{"view", "select"}, env.socketPath, env.configPath)
	if err != nil {
		t.Fatalf("view select clear: %v", err)
	}
	requireContains(t, out, "Selection cleared")
}
