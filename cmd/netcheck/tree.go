// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/db47h/hwnet"
	"github.com/db47h/hwnet/design"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

func addComponent(t treeprint.Tree, d *hwnet.Design, c hwnet.Comp, blocks map[hwnet.Comp][]hwnet.UpdateBlock) {
	for _, s := range d.Signals(c) {
		v := d.LocalName(s) + " " + d.Type(s).String()
		if k, ok := d.Value(s); ok {
			v += " = " + strconv.FormatUint(k, 10)
		}
		t.AddMetaNode(d.Kind(s), v)
	}
	for _, b := range blocks[c] {
		ws := make([]string, len(b.Writes))
		for i, w := range b.Writes {
			ws[i] = d.Name(w)
		}
		t.AddMetaNode("update", b.Name+" -> "+strings.Join(ws, ", "))
	}
	for _, ch := range d.Children(c) {
		addComponent(t.AddBranch(d.CompLocalName(ch)), d, ch, blocks)
	}
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the component hierarchy of a design file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := design.LoadFile(args[0])
			if err != nil {
				return err
			}
			blocks := make(map[hwnet.Comp][]hwnet.UpdateBlock)
			for _, b := range d.Blocks() {
				blocks[b.Host] = append(blocks[b.Host], b)
			}
			t := treeprint.NewWithRoot(d.CompName(d.Top()))
			addComponent(t, d, d.Top(), blocks)
			_, err = io.WriteString(cmd.OutOrStdout(), t.String())
			return err
		},
	}
}
