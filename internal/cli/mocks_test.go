package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

type sequenceGenerator struct {
	next int
}

func (g *sequenceGenerator) NewName() string {
	g.next++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", g.next)
}

// resetRenameFlags restores the package-level flag values between tests.
func resetRenameFlags() {
	renameFlags = renameFlagValues{}
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
