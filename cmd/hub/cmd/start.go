// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	hub "github.com/farcasterhub/hub"
	"github.com/farcasterhub/hub/pkg/node"
)

func (c *command) initStartCmd() (err error) {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the hub",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) > 0 {
				return cmd.Help()
			}

			logger, err := newLogger(cmd, c.config.GetString(optionNameVerbosity))
			if err != nil {
				return err
			}
			logger.Infof("version: %v", hub.Version)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			h, err := node.New(ctx, node.Options{
				DataDir:      c.config.GetString(optionNameDataDir),
				APIAddr:      c.config.GetString(optionNameAPIAddr),
				DebugAPIAddr: c.config.GetString(optionNameDebugAPIAddr),
				P2PAddr:      c.config.GetString(optionNameP2PAddr),
				DisableWS:    c.config.GetBool(optionNameP2PWSDisable),
				Bootnodes:    c.config.GetStringSlice(optionNameBootnodes),
				Logger:       logger,
			})
			if err != nil {
				return err
			}

			// Wait for termination or interrupt signals.
			interruptChannel := make(chan os.Signal, 1)
			signal.Notify(interruptChannel, syscall.SIGINT, syscall.SIGTERM)

			select {
			case sig := <-interruptChannel:
				logger.Debugf("received signal: %v", sig)
			case <-cmd.Context().Done():
			}
			logger.Info("shutting down")

			return h.Close()
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	c.setAllFlags(cmd)
	c.root.AddCommand(cmd)
	return nil
}
