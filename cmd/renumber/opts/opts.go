package opts

import (
	"os"

	"github.com/spf13/afero"
	"github.com/walteh/renumber/pkg/prompt"
)

// RootOpts contains the dependencies the root command runs against
type RootOpts struct {
	Fs        afero.Fs
	Confirmer prompt.Confirmer
}

// Default returns options backed by the real filesystem and the terminal
func Default() *RootOpts {
	return &RootOpts{
		Fs:        afero.NewOsFs(),
		Confirmer: prompt.NewTerminal(os.Stdin),
	}
}
