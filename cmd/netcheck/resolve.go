// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"io"

	"github.com/db47h/hwnet"
	"github.com/db47h/hwnet/design"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

func addFormatFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVarP(p, "output", "o", formatText, "output format: "+formatText+" or "+formatYAML)
}

type netOut struct {
	ID      string   `json:"id"`
	Writer  string   `json:"writer"`
	Readers []string `json:"readers"`
}

func writeYAML(w io.Writer, l *hwnet.NetList) error {
	h := l.Hierarchy()
	nets := make([]netOut, 0, l.Len())
	for _, n := range l.Nets() {
		o := netOut{ID: n.ID, Writer: h.Name(n.Writer), Readers: make([]string, len(n.Readers))}
		for i, r := range n.Readers {
			o.Readers[i] = h.Name(r)
		}
		nets = append(nets, o)
	}
	b, err := yaml.Marshal(map[string]interface{}{"nets": nets})
	if err != nil {
		return errors.Wrap(err, "encode nets")
	}
	_, err = w.Write(b)
	return err
}

func newResolveCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Resolve the nets of a design file",
		Long: `Resolve groups connected signals into nets, finds the writer of each net
and checks port directions. Each net is printed on one line as:

	<id> <writer> -> <reader>, <reader>...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatText && format != formatYAML {
				return errors.Errorf("invalid output format %q", format)
			}
			d, err := design.LoadFile(args[0])
			if err != nil {
				return err
			}
			l, err := d.Elaborate(hwnet.WithLogger(log.WithField("file", args[0])))
			if err != nil {
				return err
			}
			if format == formatYAML {
				return writeYAML(cmd.OutOrStdout(), l)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), l.String())
			return err
		},
	}
	addFormatFlag(cmd.Flags(), &format)
	return cmd
}
