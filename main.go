// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/tfctl/cfgstore/internal/command"
	"github.com/tfctl/cfgstore/internal/config"
	"github.com/tfctl/cfgstore/internal/log"
	"github.com/tfctl/cfgstore/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processSetOnly expands an @set argument into the flags listed under
// <subcommand>.<set> in the rc file. "cfgstore get @prod app" with
//
//	get:
//	  prod:
//	    - --root /etc/app
//	    - --type properties
//
// becomes "cfgstore get --root /etc/app --type properties app".
func processSetOnly(cfg config.Type, args []string) []string {
	if len(args) < 3 || args[1] == "completion" {
		return args
	}

	idx := slices.IndexFunc(args[2:], func(a string) bool {
		return strings.HasPrefix(a, "@")
	})
	if idx == -1 {
		return args
	}
	idx += 2

	set := args[idx][1:]
	entries, err := cfg.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Debugf("no such set: set=%s err=%v", set, err)
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)-1+len(expanded))
	out = append(out, args[:idx]...)
	out = append(out, expanded...)
	return append(out, args[idx+1:]...)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	cfg, _ := config.Load()
	args = processSetOnly(cfg, args)
	log.Debugf("args after set processing: args=%v", args)

	return initAndRunApp(args)
}
