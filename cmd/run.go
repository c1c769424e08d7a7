package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mwhittaker/apple2emu/internal/display"
	"github.com/mwhittaker/apple2emu/internal/machine"
)

const diskImageName = "diskii.img"

// runCmd boots the emulator against a ROM image and the disk image
// bundled alongside the executable.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the apple2 emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runApple2,
}

func runApple2(cmd *cobra.Command, args []string) {
	rom, err := machine.LoadROMFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading ROM: %v\n", err)
		os.Exit(1)
	}

	diskPath, err := diskImagePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error locating disk image: %v\n", err)
		os.Exit(1)
	}
	disk, err := os.Open(diskPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening disk image %s: %v\n", diskPath, err)
		os.Exit(1)
	}
	defer disk.Close()

	win, err := display.NewWindow()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating window: %v\n", err)
		os.Exit(1)
	}

	vm, err := machine.New(rom, disk, win)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating machine: %v\n", err)
		os.Exit(1)
	}

	vm.Run()
}

// diskImagePath resolves diskii.img next to the running executable, per
// spec.md section 6's fixed file-name-beside-the-executable rule.
func diskImagePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), diskImageName), nil
}
