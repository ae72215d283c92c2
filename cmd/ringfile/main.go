package main

import (
	"fmt"
	"io"
	"os"

	ringfile "github.com/luhtfiimanal/go-ringfile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)

	rootCmd := &cobra.Command{
		Use:           "ringfile",
		Short:         "Fixed-capacity circular byte buffer on disk",
		Long:          "ringfile keeps the last N bytes of a stream in a fixed-size file: appends overwrite the oldest data once the file is full.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	createCmd := &cobra.Command{
		Use:   "create PATH",
		Short: "Create a fresh ring file and its sidecar meta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			capacity, _ := cmd.Flags().GetInt64("capacity")
			useMmap, _ := cmd.Flags().GetBool("mmap")

			opts := ringfile.DefaultOptions()
			opts.UseMmap = useMmap
			r, err := ringfile.NewWithOptions(args[0], capacity, opts)
			if err != nil {
				return err
			}
			if err := r.Close(); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"path": args[0], "capacity": capacity}).Info("ring created")
			return nil
		},
	}
	createCmd.Flags().Int64("capacity", 0, "Ring capacity in bytes")
	createCmd.Flags().Bool("mmap", false, "Memory-map the backing file")
	_ = createCmd.MarkFlagRequired("capacity")
	rootCmd.AddCommand(createCmd)

	appendCmd := &cobra.Command{
		Use:   "append PATH",
		Short: "Append stdin to an existing ring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			useMmap, _ := cmd.Flags().GetBool("mmap")
			r, err := openExisting(args[0], useMmap)
			if err != nil {
				return err
			}

			buf := make([]byte, 64<<10)
			var total int64
			for {
				n, rerr := os.Stdin.Read(buf)
				if n > 0 {
					if err := r.Append(buf[:n]); err != nil {
						r.Close()
						return err
					}
					total += int64(n)
				}
				if rerr == io.EOF {
					break
				}
				if rerr != nil {
					r.Close()
					return fmt.Errorf("read stdin: %w", rerr)
				}
			}
			if err := r.Close(); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"path": args[0], "bytes": total}).Info("appended")
			return nil
		},
	}
	appendCmd.Flags().Bool("mmap", false, "Memory-map the backing file")
	rootCmd.AddCommand(appendCmd)

	catCmd := &cobra.Command{
		Use:   "cat PATH",
		Short: "Stream ring contents to stdout, oldest byte first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, _ := cmd.Flags().GetInt64("offset")
			count, _ := cmd.Flags().GetInt64("count")
			useMmap, _ := cmd.Flags().GetBool("mmap")

			r, err := openExisting(args[0], useMmap)
			if err != nil {
				return err
			}
			defer r.Close()

			if count < 0 {
				count = r.Count() - offset
			}
			sent, err := r.SendTo(os.Stdout, offset, count)
			if err != nil {
				return err
			}
			log.WithField("bytes", sent).Debug("streamed")
			return nil
		},
	}
	catCmd.Flags().Int64("offset", 0, "Logical offset to start from (0 = oldest byte)")
	catCmd.Flags().Int64("count", -1, "Number of bytes to stream (-1 = everything from offset)")
	catCmd.Flags().Bool("mmap", false, "Memory-map the backing file")
	rootCmd.AddCommand(catCmd)

	statCmd := &cobra.Command{
		Use:   "stat PATH",
		Short: "Print ring bookkeeping from the sidecar meta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ringfile.ReadMetaFile(ringfile.MetaPath(args[0]))
			if err != nil {
				return fmt.Errorf("read meta for %s: %w", args[0], err)
			}
			fmt.Printf("capacity: %d\ncount:    %d\ncursor:   %d\n", m.Capacity, m.Count, m.Cursor)
			return nil
		},
	}
	rootCmd.AddCommand(statCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// openExisting resumes a ring created by `ringfile create`, recovering
// its capacity from the sidecar meta.
func openExisting(path string, useMmap bool) (*ringfile.RingFile, error) {
	m, err := ringfile.ReadMetaFile(ringfile.MetaPath(path))
	if err != nil {
		return nil, fmt.Errorf("read meta for %s (create it with `ringfile create`): %w", path, err)
	}
	opts := ringfile.DefaultOptions()
	opts.Resume = true
	opts.UseMmap = useMmap
	return ringfile.NewWithOptions(path, m.Capacity, opts)
}
