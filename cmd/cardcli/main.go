// Command cardcli is a thin interactive driver: it owns no rules
// of its own, only argument parsing and printing. Every mutation goes
// through an engine.Game command and every line of output is derived from
// the events that command returned.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bjorn-karlsson/hearthstone-sub000/catalog"
	"github.com/bjorn-karlsson/hearthstone-sub000/engine"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

func main() {
	if len(os.Args) < 6 {
		log.Fatalf("usage: cardcli <catalog.json> <deck0.json> <deck1.json> <hero0> <hero1> [seed]")
	}
	catPath, deck0Path, deck1Path, hero0, hero1 := os.Args[1], os.Args[2], os.Args[3], os.Args[4], os.Args[5]

	var seed uint64 = 1
	if len(os.Args) > 6 {
		n, err := strconv.ParseUint(os.Args[6], 10, 64)
		if err != nil {
			log.Fatalf("invalid seed %q: %v", os.Args[6], err)
		}
		seed = n
	}

	cat, err := loadCatalog(catPath)
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}
	deck0, err := loadDeck(deck0Path)
	if err != nil {
		log.Fatalf("loading %s: %v", deck0Path, err)
	}
	deck1, err := loadDeck(deck1Path)
	if err != nil {
		log.Fatalf("loading %s: %v", deck1Path, err)
	}

	g, err := engine.New(cat, seed, [2][]string{deck0, deck1}, [2]string{hero0, hero1})
	if err != nil {
		log.Fatalf("starting game: %v", err)
	}
	fmt.Printf("session %s\n", g.ID)

	events, err := g.StartGame()
	if err != nil {
		log.Fatalf("start_game: %v", err)
	}
	printEvents(events)

	runREPL(g)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return catalog.LoadYAML(data)
	}
	return catalog.LoadJSON(data)
}

func loadDeck(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err == nil {
		return ids, nil
	}
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("deck file is neither a card-id array nor a {id: count} map: %w", err)
	}
	return catalog.ExpandCounts(counts), nil
}

func runREPL(g *engine.Game) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp()
		case "state":
			printState(g)
		case "hand":
			printHand(g)
		case "board":
			printBoard(g)
		case "end":
			events, err := g.EndTurn(g.State.ActivePlayer)
			reportOrPrint(events, err)
		case "play":
			handlePlay(g, fields)
		case "atk":
			handleAttack(g, fields)
		case "quit":
			return
		default:
			fmt.Printf("unrecognized command %q; try help\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println("commands: help, state, hand, board, end, play <idx> [face | m <id>], atk <attacker_id> face|m <id>, quit")
}

func printState(g *engine.Game) {
	for pid := state.PlayerID(0); pid < 2; pid++ {
		mana, maxMana := g.Mana(pid)
		fmt.Printf("player %d: health=%d armor=%d mana=%d/%d hand=%d board=%d\n",
			pid, g.Health(pid), g.Armor(pid), mana, maxMana, len(g.Hand(pid)), len(g.Board(pid)))
	}
}

func printHand(g *engine.Game) {
	pid := g.State.ActivePlayer
	for i, id := range g.Hand(pid) {
		cost, _ := g.EffectiveCost(pid, id)
		fmt.Printf("  [%d] %s (%d)\n", i, id, cost)
	}
}

func printBoard(g *engine.Game) {
	for pid := state.PlayerID(0); pid < 2; pid++ {
		fmt.Printf("player %d board:\n", pid)
		for _, m := range g.Board(pid) {
			fmt.Printf("  #%d %s %d/%d\n", m.ID, m.Name, m.Attack, m.Health)
		}
	}
}

func handlePlay(g *engine.Game, fields []string) {
	if len(fields) < 2 {
		fmt.Println("usage: play <idx> [face | m <id>]")
		return
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Printf("bad hand index %q\n", fields[1])
		return
	}
	tgt, err := parseTarget(g, fields[2:])
	if err != nil {
		fmt.Println(err)
		return
	}
	events, err := g.PlayCard(g.State.ActivePlayer, idx, tgt, nil)
	reportOrPrint(events, err)
}

func handleAttack(g *engine.Game, fields []string) {
	if len(fields) < 3 {
		fmt.Println("usage: atk <attacker_id> face|m <id>")
		return
	}
	attackerID, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Printf("bad attacker id %q\n", fields[1])
		return
	}
	tgt, err := parseTarget(g, fields[2:])
	if err != nil {
		fmt.Println(err)
		return
	}
	events, err := g.Attack(g.State.ActivePlayer, state.MinionID(attackerID), tgt)
	reportOrPrint(events, err)
}

// parseTarget reads a "face" or "m <id>" token pair into a state.Target;
// an empty token list means no target was supplied.
func parseTarget(g *engine.Game, tokens []string) (state.Target, error) {
	if len(tokens) == 0 {
		return state.NoTarget, nil
	}
	switch tokens[0] {
	case "face":
		return state.PlayerTarget(g.State.ActivePlayer.Other()), nil
	case "m":
		if len(tokens) < 2 {
			return state.Target{}, fmt.Errorf("usage: m <minion_id>")
		}
		id, err := strconv.Atoi(tokens[1])
		if err != nil {
			return state.Target{}, fmt.Errorf("bad minion id %q", tokens[1])
		}
		return state.MinionTarget(state.MinionID(id)), nil
	}
	return state.Target{}, fmt.Errorf("unrecognized target %q", tokens[0])
}

// reportOrPrint prints a command's error if it failed (no events are ever
// produced on a rejected command), or its
// events otherwise.
func reportOrPrint(events []event.Event, err error) {
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printEvents(events)
}

func printEvents(events []event.Event) {
	for _, e := range events {
		fmt.Printf("%s %v\n", e.Kind, e.Payload)
	}
}
