// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgstore/internal/meta"
)

const bashCompletionScript = `# bash completion for cfgstore
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

# Config names are the files under the root with their extension stripped.
_cfgstore_names()
{
    local root=${CFGSTORE_ROOT:-conf} type=${CFGSTORE_TYPE:-json}
    local i
    for ((i = 2; i < ${#COMP_WORDS[@]}; i++)); do
        case "${COMP_WORDS[$i]}" in
            --root|-r) root=${COMP_WORDS[$((i+1))]} ;;
            --type|-T) type=${COMP_WORDS[$((i+1))]} ;;
        esac
    done
    [[ -d "$root" ]] || return
    (cd "$root" && find . -type f -name "*.${type}" 2>/dev/null | sed -e 's|^\./||' -e "s|\.${type}\$||")
}

_cfgstore()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "get keys diff completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --output -o --padding --root -r --titles -t --type -T"

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
            return 0
            ;;
        --type|-T)
            COMPREPLY=( $(compgen -W "json properties" -- "$cur") )
            return 0
            ;;
        --root|-r)
            COMPREPLY=( $(compgen -o dirnames -- "$cur") )
            return 0
            ;;
    esac

    case "$cmd" in
        get)
            local opts="$common --filter -f"
            ;;
        diff)
            local opts="$common --diff_filter"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    COMPREPLY=( $(compgen -W "$(_cfgstore_names)" -- "$cur") )
    return 0
}

complete -F _cfgstore cfgstore
`

const zshCompletionScript = `#compdef cfgstore

_cfgstore_names() {
  local root=${opt_args[--root]:-${opt_args[-r]:-${CFGSTORE_ROOT:-conf}}}
  local type=${opt_args[--type]:-${opt_args[-T]:-${CFGSTORE_TYPE:-json}}}
  local -a names
  [[ -d $root ]] || return
  names=( ${root}/**/*.${type}(N.:s|${root}/||:r) )
  _describe -t names 'config names' names
}

_cfgstore() {
  local -a cmds
  cmds=(
    'get:print a config file or one of its values'
    'keys:list the top-level keys of a config file'
    'diff:show differences between two config files'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--padding[padding between text columns]:padding'
  '(-r --root)'{-r,--root}'[config root directory]:root:_directories'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '(-T --type)'{-T,--type}'[config file format]:type:(json properties)'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'cfgstore commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  typeset -A opt_args
  case $words[2] in
    get)
      _arguments -C \
        $common \
        '(-f --filter)'{-f,--filter}'[row filters]:filters' \
        '1:NAME:_cfgstore_names' \
        '2::KEY:'
      ;;
    keys)
      _arguments -C \
        $common \
        '1:NAME:_cfgstore_names'
      ;;
    diff)
      _arguments -C \
        $common \
        '--diff_filter[keys to ignore]:keys' \
        '1:NAME:_cfgstore_names' \
        '2:OTHER:_cfgstore_names'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _cfgstore cfgstore
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := Writer(cmd)

	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "cfgstore completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
