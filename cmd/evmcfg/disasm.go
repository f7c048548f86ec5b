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

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/theblockbrain/ai-safeguard/internal/evmasm"
	"github.com/theblockbrain/ai-safeguard/log"
)

var disasmCommand = &cli.Command{
	Name:      "disasm",
	Usage:     "print a flat disassembly listing",
	ArgsUsage: "<bytecode-hex-file>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "o", Usage: "output file (default: stdout)"},
	},
	Action: disasmAction,
}

func disasmAction(c *cli.Context) error {
	inputPath := c.Args().First()
	if inputPath == "" {
		return cli.ShowCommandHelp(c, "disasm")
	}

	code, err := readBytecodeFile(inputPath)
	if err != nil {
		return err
	}
	log.Info("bytecode read", "file", inputPath, "bytes", len(code))

	ops := evmasm.Disassemble(code, evmasm.DefaultFork)
	log.Info("disassembled", "ops", len(ops))

	return writeOutput(c.String("o"), evmasm.FormatListing(ops))
}
