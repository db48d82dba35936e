package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/rbset"
	"github.com/npillmayer/rbset/rbtree"
	"github.com/pterm/pterm"
)

// command is an REPL command operating on the environment.
type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int // -1 for any number
	run     func(intp *Intp, args []token) (string, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"new":      {"new NAME", "create an empty set and make it current", 1, 1, cmdNew},
		"use":      {"use NAME", "make a set current", 1, 1, cmdUse},
		"sets":     {"sets", "list all sets", 0, 0, cmdSets},
		"insert":   {"insert N…", "insert keys into the current set", 1, -1, cmdInsert},
		"find":     {"find N", "find a key and show its neighbours", 1, 1, cmdFind},
		"contains": {"contains N", "test if a key is present", 1, 1, cmdContains},
		"count":    {"count N", "count occurences of a key (0 or 1)", 1, 1, cmdCount},
		"min":      {"min", "print the smallest key", 0, 0, cmdMin},
		"max":      {"max", "print the largest key", 0, 0, cmdMax},
		"len":      {"len", "print the number of keys", 0, 0, cmdLen},
		"list":     {"list", "list keys in ascending order", 0, 0, cmdList},
		"rlist":    {"rlist", "list keys in descending order", 0, 0, cmdRList},
		"tree":     {"tree", "display the red-black tree", 0, 0, cmdTree},
		"check":    {"check", "verify the red-black properties", 0, 0, cmdCheck},
		"hash":     {"hash", "print a fingerprint of the tree's shape", 0, 0, cmdHash},
		"clear":    {"clear", "remove all keys from the current set", 0, 0, cmdClear},
		"help":     {"help", "print this list", 0, 0, cmdHelp},
		"quit":     {"quit", "leave the REPL", 0, 0, nil},
	}
}

func cmdNew(intp *Intp, args []token) (string, error) {
	if args[0].kind != WORD {
		return "", fmt.Errorf("not a valid set name: '%s'", args[0].lexeme)
	}
	name := args[0].lexeme
	if _, old := intp.env.define(name); old != nil {
		tracer().Infof("replacing set '%s' holding %d keys", name, old.Len())
	}
	intp.env.current = name
	return fmt.Sprintf("created set %s", name), nil
}

func cmdUse(intp *Intp, args []token) (string, error) {
	if err := intp.env.use(args[0].lexeme); err != nil {
		return "", err
	}
	return fmt.Sprintf("using set %s", args[0].lexeme), nil
}

func cmdSets(intp *Intp, args []token) (string, error) {
	var b bytes.Buffer
	intp.env.each(func(name string, set *rbset.Set[int64]) {
		marker := " "
		if name == intp.env.current {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s (%d keys)\n", marker, name, set.Len())
	})
	return strings.TrimRight(b.String(), "\n"), nil
}

func cmdInsert(intp *Intp, args []token) (string, error) {
	keys, err := numbers(args)
	if err != nil {
		return "", err
	}
	n := intp.env.set().InsertAll(keys...)
	return fmt.Sprintf("inserted %d of %d keys", n, len(keys)), nil
}

func cmdFind(intp *Intp, args []token) (string, error) {
	k, err := args[0].number()
	if err != nil {
		return "", err
	}
	it, found := intp.env.set().Lookup(k)
	if !found {
		return fmt.Sprintf("%d not found", k), nil
	}
	pred, succ := "none", "none"
	if p := it.Prev(); p.Valid() {
		pred = fmt.Sprint(p.Key())
	}
	if n := it.Next(); n.Valid() {
		succ = fmt.Sprint(n.Key())
	}
	return fmt.Sprintf("found %d (predecessor %s, successor %s)", k, pred, succ), nil
}

func cmdContains(intp *Intp, args []token) (string, error) {
	k, err := args[0].number()
	if err != nil {
		return "", err
	}
	return fmt.Sprint(intp.env.set().Contains(k)), nil
}

func cmdCount(intp *Intp, args []token) (string, error) {
	k, err := args[0].number()
	if err != nil {
		return "", err
	}
	return fmt.Sprint(intp.env.set().Count(k)), nil
}

func cmdMin(intp *Intp, args []token) (string, error) {
	if k, ok := intp.env.set().Min(); ok {
		return fmt.Sprint(k), nil
	}
	return "", errEmpty(intp)
}

func cmdMax(intp *Intp, args []token) (string, error) {
	if k, ok := intp.env.set().Max(); ok {
		return fmt.Sprint(k), nil
	}
	return "", errEmpty(intp)
}

func cmdLen(intp *Intp, args []token) (string, error) {
	return fmt.Sprint(intp.env.set().Len()), nil
}

func cmdList(intp *Intp, args []token) (string, error) {
	return intp.env.set().String(), nil
}

func cmdRList(intp *Intp, args []token) (string, error) {
	set := intp.env.set()
	keys := make([]string, 0, set.Len())
	for it := set.RBegin(); !it.IsREnd(); it = it.Next() {
		keys = append(keys, fmt.Sprint(it.Key()))
	}
	if len(keys) == 0 {
		return "{ }", nil
	}
	return "{ " + strings.Join(keys, ", ") + " }", nil
}

func cmdTree(intp *Intp, args []token) (string, error) {
	set := intp.env.set()
	if set.Empty() {
		return "", errEmpty(intp)
	}
	pterm.Println(intp.env.current)
	pterm.DefaultTree.WithRoot(treeOf(set)).Render()
	return "", nil
}

func cmdCheck(intp *Intp, args []token) (string, error) {
	set := intp.env.set()
	if err := set.Check(); err != nil {
		return "", err
	}
	tree := set.Tree()
	return fmt.Sprintf("ok: %d keys, height %d, black height %d",
		set.Len(), tree.Height(), tree.BlackHeight()), nil
}

func cmdHash(intp *Intp, args []token) (string, error) {
	return intp.env.set().Fingerprint()
}

func cmdClear(intp *Intp, args []token) (string, error) {
	intp.env.set().Clear()
	return fmt.Sprintf("cleared set %s", intp.env.current), nil
}

func cmdHelp(intp *Intp, args []token) (string, error) {
	names := rbset.New[string]()
	for name := range commands {
		names.Insert(name)
	}
	var b bytes.Buffer
	names.Each(func(name string) bool {
		cmd := commands[name]
		fmt.Fprintf(&b, "%-12s %s\n", cmd.usage, cmd.help)
		return true
	})
	return strings.TrimRight(b.String(), "\n"), nil
}

// --- Helpers ---------------------------------------------------------------

func numbers(args []token) ([]int64, error) {
	keys := make([]int64, len(args))
	for i, arg := range args {
		k, err := arg.number()
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	return keys, nil
}

func errEmpty(intp *Intp) error {
	return fmt.Errorf("set %s is empty", intp.env.current)
}

// treeOf creates a pterm tree from a set's red-black tree. Red nodes are
// printed in red.
func treeOf(set *rbset.Set[int64]) pterm.TreeNode {
	return pterm.NewTreeFromLeveledList(leveledList(set))
}

func leveledList(set *rbset.Set[int64]) pterm.LeveledList {
	shape := set.Tree().Shape()
	ll := make(pterm.LeveledList, 0, len(shape))
	for _, n := range shape {
		text := n.Key
		if n.Depth > 0 {
			text = n.Side[:1] + ": " + text
		}
		if n.Color == rbtree.Red.String() {
			text = pterm.FgRed.Sprint(text)
		}
		ll = append(ll, pterm.LeveledListItem{Level: n.Depth, Text: text})
	}
	return ll
}
