// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"cogentcore.org/viscera/config"
	"cogentcore.org/viscera/engine"
	"cogentcore.org/viscera/member"
	"cogentcore.org/viscera/navigate"
	"cogentcore.org/viscera/present"
	"github.com/mattn/go-shellwords"
)

// Session is an interactive inspector session on the demo scene.
type Session struct {

	// Config is the current configuration.
	Config *config.Config

	// Registry is the member registry of the session.
	Registry *member.Registry

	// Scene is the inspected scene.
	Scene *engine.Scene

	// Selection is the selected object of the scene.
	Selection *engine.Selection

	// Window holds the inspector pages.
	Window *navigate.Window

	out  io.Writer
	text *present.Text

	// mu protects the session from config reloads.
	mu sync.Mutex
}

// NewSession returns a new session on a new demo scene, writing to out.
func NewSession(cfg *config.Config, out io.Writer) *Session {
	s := &Session{Registry: member.NewRegistry(), Selection: &engine.Selection{}, out: out}
	s.Scene = NewDemoScene(cfg.Scene)
	engine.SetActiveScene(s.Scene)
	s.Window = navigate.NewWindow(s.Registry, s.Selection)
	s.setConfig(cfg)
	return s
}

// SetConfig applies the given configuration to the session.
func (s *Session) SetConfig(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setConfig(cfg)
}

func (s *Session) setConfig(cfg *config.Config) {
	s.Config = cfg
	cfg.Apply(s.Registry)
	s.text = present.NewText(s.out, cfg.Color)
}

// Page returns the current page.
func (s *Session) Page() *navigate.Page { return s.Window.Current() }

// Tick advances the scene by one tick and refreshes the current page.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tick()
}

func (s *Session) tick() {
	s.Scene.Update(float32(time.Duration(s.Config.Tick).Seconds()))
	s.Window.Update()
}

// Show prints the current page.
func (s *Session) Show() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.show()
}

func (s *Session) show() error {
	return s.text.Render(present.Snapshot(s.Page()))
}

// Watch ticks and prints the current page at the configured interval
// until the context is done or the given number of frames, if positive,
// has been shown.
func (s *Session) Watch(ctx context.Context, frames int) error {
	d := time.Duration(s.Config.Tick)
	if d <= 0 {
		d = 250 * time.Millisecond
	}
	ticker := time.NewTicker(d)
	defer ticker.Stop()
	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		s.Tick()
		if err := s.Show(); err != nil {
			return err
		}
	}
	return nil
}

// Run reads commands from in until it ends or a quit command.
// Command errors are printed and do not stop the session.
func (s *Session) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(s.out, "> ")
	for sc.Scan() {
		quit, err := s.Exec(sc.Text())
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
		}
		if quit {
			return nil
		}
		fmt.Fprint(s.out, "> ")
	}
	return sc.Err()
}

// command is one command of the session. Commands that change the
// inspector are followed by a tick and a print of the page.
type command struct {
	args    string
	help    string
	refresh bool
	run     func(s *Session, args []string) error
}

var commands map[string]*command

func init() {
	commands = map[string]*command{
		"help":     {"", "show this help", false, (*Session).help},
		"ls":       {"", "list the objects of the scene and the pages", false, (*Session).list},
		"select":   {"<object>", "inspect a game object of the scene", true, (*Session).selectObject},
		"open":     {"<path>", "open the member at path", true, withPath(present.DrillInto)},
		"up":       {"<index>", "go back to the entity at index in the breadcrumbs", true, (*Session).up},
		"set":      {"<path> <value>", "edit the member at path", true, (*Session).set},
		"show":     {"<path>", "evaluate the property at path", true, withPath(present.Materialize)},
		"expand":   {"<path>", "show the children of the member at path", true, withPath(expand(true))},
		"collapse": {"<path>", "hide the children of the member at path", true, withPath(expand(false))},
		"resize":   {"<path> <length>", "resize the list at path", true, (*Session).resize},
		"tab":      {"new | close [index] | <index>", "manage pages", true, (*Session).tab},
		"find":     {"<query>", "find members by name", false, (*Session).find},
		"tree":     {"", "draw the current entity as a tree", false, (*Session).tree},
		"tick":     {"[n]", "advance the scene", false, (*Session).ticks},
		"spawn":    {"<object>", "clone a game object", false, (*Session).spawn},
		"destroy":  {"<object>", "destroy a game object", true, (*Session).destroy},
		"reload":   {"<object>", "reload the spinner of a game object", true, (*Session).reload},
	}
}

func withPath(fun func(p *navigate.Page, path string) error) func(s *Session, args []string) error {
	return func(s *Session, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected a member path")
		}
		return fun(s.Page(), args[0])
	}
}

func expand(on bool) func(p *navigate.Page, path string) error {
	return func(p *navigate.Page, path string) error {
		return present.Expand(p, path, on)
	}
}

// Exec runs one command line. It returns true for a quit command.
func (s *Session) Exec(line string) (bool, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}
	name, args := args[0], args[1:]
	if name == "quit" || name == "exit" {
		return true, nil
	}
	cmd, ok := commands[name]
	if !ok {
		return false, fmt.Errorf("unknown command %q; try help", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slog.Debug("viscera: command", "name", name, "args", args)
	if err := cmd.run(s, args); err != nil {
		return false, err
	}
	if cmd.refresh {
		s.tick()
		return false, s.show()
	}
	return false, nil
}

func (s *Session) help(args []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		c := commands[name]
		fmt.Fprintf(s.out, "%-8s %-30s %s\n", name, c.args, c.help)
	}
	fmt.Fprintf(s.out, "%-8s %-30s %s\n", "quit", "", "end the session")
	return nil
}

func (s *Session) list(args []string) error {
	for _, g := range s.Scene.Objects() {
		fmt.Fprintf(s.out, "%s (%d components)\n", g.Name, len(g.GetComponents()))
	}
	for i, t := range s.Window.Titles() {
		mark := " "
		if i == s.Window.CurrentIndex() {
			mark = "*"
		}
		fmt.Fprintf(s.out, "%s tab %d: %s\n", mark, i, t)
	}
	return nil
}

func (s *Session) object(args []string) (*engine.GameObject, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected an object name")
	}
	g := s.Scene.Find(args[0])
	if g == nil {
		return nil, fmt.Errorf("no object named %q", args[0])
	}
	return g, nil
}

func (s *Session) selectObject(args []string) error {
	g, err := s.object(args)
	if err != nil {
		return err
	}
	s.Selection.Select(g)
	s.Window.SelectActive()
	return nil
}

func index(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid index %q", arg)
	}
	return i, nil
}

func (s *Session) up(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected an index")
	}
	i, err := index(args[0])
	if err != nil {
		return err
	}
	s.Page().TruncateTo(i)
	return nil
}

func (s *Session) set(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("expected a member path and a value")
	}
	return present.Edit(s.Page(), args[0], strings.Join(args[1:], " "))
}

func (s *Session) resize(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected a member path and a length")
	}
	n, err := index(args[1])
	if err != nil {
		return err
	}
	return present.Resize(s.Page(), args[0], n)
}

func (s *Session) tab(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected new, close or an index")
	}
	switch args[0] {
	case "new":
		s.Window.AddPage()
		return nil
	case "close":
		i := s.Window.CurrentIndex()
		if len(args) > 1 {
			var err error
			if i, err = index(args[1]); err != nil {
				return err
			}
		}
		s.Window.ClosePage(i)
		return nil
	}
	i, err := index(args[0])
	if err != nil {
		return err
	}
	if i >= len(s.Window.Pages) {
		return fmt.Errorf("no tab %d", i)
	}
	s.Window.SetPage(i)
	return nil
}

func (s *Session) find(args []string) error {
	ms := present.Find(s.Page(), strings.Join(args, " "))
	if len(ms) == 0 {
		fmt.Fprintln(s.out, "no matches")
	}
	for _, m := range ms {
		fmt.Fprintf(s.out, "%s %s\n", m.Path, m.EntityName)
	}
	return nil
}

func (s *Session) tree(args []string) error {
	_, err := fmt.Fprintln(s.out, present.Tree(present.Snapshot(s.Page())))
	return err
}

func (s *Session) ticks(args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = index(args[0]); err != nil {
			return err
		}
	}
	for range n {
		s.tick()
	}
	return s.show()
}

func (s *Session) spawn(args []string) error {
	g, err := s.object(args)
	if err != nil {
		return err
	}
	ng, err := s.Scene.Instantiate(g)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "spawned", ng.Name)
	return nil
}

func (s *Session) destroy(args []string) error {
	g, err := s.object(args)
	if err != nil {
		return err
	}
	s.Scene.Destroy(g)
	return nil
}

func (s *Session) reload(args []string) error {
	g, err := s.object(args)
	if err != nil {
		return err
	}
	if !Reload(g) {
		return fmt.Errorf("%s has no spinner", g.Name)
	}
	return nil
}
