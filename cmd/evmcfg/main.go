// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

// Command evmcfg disassembles EVM bytecode and resolves its control-flow
// graph. It reads hex-encoded bytecode from a file; it never fetches code
// from a network.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/theblockbrain/ai-safeguard/conf"
	"github.com/theblockbrain/ai-safeguard/log"
	"github.com/theblockbrain/ai-safeguard/params"
)

const usageText = `evmcfg [command] <bytecode-hex-file> [options]

Commands:
  disasm   print a flat disassembly listing
  cfg      resolve and render the control-flow graph as DOT

Examples:
  evmcfg disasm contract.hex
  evmcfg disasm contract.hex -o contract.asm
  evmcfg cfg contract.hex -o contract.dot
  evmcfg cfg contract.hex -o contract.dot -disasm contract.asm`

func main() {
	log.Init("", conf.DefaultLoggerConfig())

	app := &cli.App{
		Name:      "evmcfg",
		Usage:     "disassemble EVM bytecode and resolve its control-flow graph",
		UsageText: usageText,
		Version:   params.VersionWithMeta,
		Commands: []*cli.Command{
			disasmCommand,
			cfgCommand,
		},
		Copyright: "Copyright 2022-2026 The N42 Authors",
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("evmcfg failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
