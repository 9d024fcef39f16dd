package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/ubench/physics"
	"github.com/dshills/ubench/provider"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Initialize the physics library and describe the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := loadConfig(nil)
			if err != nil {
				return err
			}

			scene, err := physics.Bootstrap(logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			scene.Library.PrintLibraryInfo(out)

			info := scene.Library.Info()
			settings := scene.System.Settings()
			box := scene.Box
			q := box.Rotation()
			fmt.Fprintf(out, "Platform:        %s\n", info.Platform)
			fmt.Fprintf(out, "Max bodies:      %d\n", settings.MaxBodies)
			fmt.Fprintf(out, "Max body pairs:  %d\n", settings.MaxBodyPairs)
			fmt.Fprintf(out, "Max contacts:    %d\n", settings.MaxContacts)
			fmt.Fprintf(out, "Body mutexes:    %d\n", scene.System.BodyMutexes())
			fmt.Fprintf(out, "Box position:    %v\n", box.Position())
			fmt.Fprintf(out, "Box rotation:    w=%g x=%g y=%g z=%g\n", q.W, q.X(), q.Y(), q.Z())
			fmt.Fprintf(out, "Box mass:        %g\n", box.MassProperties().Mass)
			fmt.Fprintf(out, "Box active:      %t\n", box.IsActive())
			fmt.Fprintf(out, "Bodies:          %d\n", scene.System.NumBodies())
			if alloc := scene.Library.Allocator(); alloc != nil {
				fmt.Fprintf(out, "Allocated:       %d shape(s), %d body(ies)\n", alloc.Shapes(), alloc.Bodies())
			}

			fmt.Fprintln(out, "\nProviders:")
			factory := provider.NewDefaultFactory()
			for _, kind := range provider.AllKinds() {
				p, err := factory.CreateProvider(kind)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-8s acos(-1)=%g sqrt(2)=%g\n", p.Name(), p.Acos(-1), p.Sqrt(2))
			}
			return nil
		},
	}
}
