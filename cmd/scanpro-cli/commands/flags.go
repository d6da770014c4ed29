package commands

import "github.com/spf13/pflag"

// optionFlags registers option flags and copies the ones given on the command line into
// the options, after the defaults and the options file have been applied.
type optionFlags struct {
	fs      *pflag.FlagSet
	applies []func()
}

func newOptionFlags(fs *pflag.FlagSet) *optionFlags {
	return &optionFlags{fs: fs}
}

func (f *optionFlags) onChange(name string, fn func()) {
	f.applies = append(f.applies, func() {
		if f.fs.Changed(name) {
			fn()
		}
	})
}

func (f *optionFlags) String(name, usage string, dst *string) {
	v := f.fs.String(name, "", usage)
	f.onChange(name, func() { *dst = *v })
}

func (f *optionFlags) Int(name, usage string, dst *int) {
	v := f.fs.Int(name, 0, usage)
	f.onChange(name, func() { *dst = *v })
}

func (f *optionFlags) IntPtr(name, usage string, dst **int) {
	v := f.fs.Int(name, 0, usage)
	f.onChange(name, func() {
		n := *v
		*dst = &n
	})
}

func (f *optionFlags) BoolPtr(name, usage string, dst **bool) {
	v := f.fs.Bool(name, false, usage)
	f.onChange(name, func() {
		b := *v
		*dst = &b
	})
}

func (f *optionFlags) Float(name, usage string, dst *float64) {
	v := f.fs.Float64(name, 0, usage)
	f.onChange(name, func() { *dst = *v })
}

func (f *optionFlags) Ints(name, usage string, dst *[]int) {
	v := f.fs.IntSlice(name, nil, usage)
	f.onChange(name, func() { *dst = append([]int(nil), (*v)...) })
}

// apply copies every flag set on the command line into its destination.
func (f *optionFlags) apply() {
	for _, fn := range f.applies {
		fn()
	}
}

// enumFlag registers a flag for a string-based enum type.
func enumFlag[S ~string](f *optionFlags, name, usage string, dst *S) {
	v := f.fs.String(name, "", usage)
	f.onChange(name, func() { *dst = S(*v) })
}
