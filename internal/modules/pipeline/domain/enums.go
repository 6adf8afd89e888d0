//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// Stage is a step of the degradation sequence a run walks through.
// ENUM(try_primary,try_secondary,try_placeholder,done)
type Stage string

// Decision says what happens to the output artifact once every source
// failed: publish a placeholder or preserve what is already there.
// ENUM(publish,preserve)
type Decision string
