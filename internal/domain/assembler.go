package domain

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	m "github.com/dystudio/try/internal/model"
)

// Assembler splices the buffers of a workspace into its host files.
type Assembler interface {
	Assemble(ws m.Workspace) (*m.Composition, error)
}

type assembler struct {
	markers MarkerStrategy
}

// NewAssembler constructs an Assembler that finds regions with markers.
func NewAssembler(markers MarkerStrategy) Assembler {
	return &assembler{markers: markers}
}

type located struct {
	buffer m.Buffer
	loc    Location
}

// Assemble returns one composed document per host file, followed by one
// document per standalone buffer (sorted by name). The result only depends on
// the set of buffers, not on their order in the request.
func (a *assembler) Assemble(ws m.Workspace) (*m.Composition, error) {
	files, err := indexFiles(ws.Files)
	if err != nil {
		return nil, err
	}

	if err := validateBuffers(ws.Buffers); err != nil {
		return nil, err
	}

	targets := make(map[string][]m.Buffer, len(files))

	var standalone []m.Buffer

	for _, b := range ws.Buffers {
		if _, ok := files[b.ID.FileName]; ok {
			targets[b.ID.FileName] = append(targets[b.ID.FileName], b)

			continue
		}

		if !b.ID.IsWholeFile() {
			return nil, bufferError(ErrUnknownBuffer, b.ID, "no host file named %q", b.ID.FileName)
		}

		standalone = append(standalone, b)
	}

	docs := make([]m.ComposedDocument, len(ws.Files))
	errs := make([]error, len(ws.Files))

	var g errgroup.Group

	for i, file := range ws.Files {
		i, file := i, file
		g.Go(func() error {
			docs[i], errs[i] = a.composeFile(file, targets[file.Name])

			return errs[i]
		})
	}

	if g.Wait() != nil {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	sort.Slice(standalone, func(i, j int) bool {
		return standalone[i].ID.FileName < standalone[j].ID.FileName
	})

	for _, b := range standalone {
		docs = append(docs, composeStandalone(b))
	}

	return m.NewComposition(docs...), nil
}

func indexFiles(files []m.SourceFile) (map[string]m.SourceFile, error) {
	index := make(map[string]m.SourceFile, len(files))

	for _, f := range files {
		if _, dup := index[f.Name]; dup {
			return nil, bufferError(ErrConflictingRegion, m.BufferID{FileName: f.Name}, "host file listed twice")
		}

		index[f.Name] = f
	}

	return index, nil
}

func validateBuffers(buffers []m.Buffer) error {
	seen := make(map[m.BufferID]struct{}, len(buffers))

	for _, b := range buffers {
		if b.ID.FileName == "" {
			return bufferError(ErrUnknownBuffer, b.ID, "buffer has no file name")
		}

		if _, dup := seen[b.ID]; dup {
			return bufferError(ErrConflictingRegion, b.ID, "two buffers target the same region")
		}

		seen[b.ID] = struct{}{}
	}

	return nil
}

func (a *assembler) composeFile(file m.SourceFile, buffers []m.Buffer) (m.ComposedDocument, error) {
	targets := make([]located, 0, len(buffers))

	for _, b := range buffers {
		loc := Locate(file.Text, b.ID.Region, a.markers)

		switch loc.Status {
		case LocateNotFound:
			names := regionNames(Regions(file.Text, a.markers))

			return m.ComposedDocument{}, bufferError(ErrRegionNotFound, b.ID,
				"%s has regions [%s]", file.Name, strings.Join(names, ", "))
		case LocateDuplicate:
			return m.ComposedDocument{}, bufferError(ErrDuplicateRegion, b.ID,
				"%d marker pairs named %q in %s", loc.Matches, b.ID.Region, file.Name)
		}

		tracer().Debugf("located %s at %s (outer %s)", b.ID, loc.Region, loc.Outer)
		targets = append(targets, located{buffer: b, loc: loc})
	}

	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].loc.Region.Start < targets[j].loc.Region.Start
	})

	for i := 1; i < len(targets); i++ {
		prev, next := targets[i-1], targets[i]
		if prev.loc.Outer.Overlaps(next.loc.Outer) || prev.loc.Outer.ContainsSpan(next.loc.Outer) {
			return m.ComposedDocument{}, bufferError(ErrConflictingRegion, next.buffer.ID,
				"overlaps %s", prev.buffer.ID)
		}
	}

	text := file.Text
	delta := 0
	viewports := make([]m.Viewport, 0, len(targets))

	for _, t := range targets {
		loc := shiftLocation(t.loc, delta)

		var region, outer m.Span

		text, region, outer = Splice(text, loc, t.buffer.Content)
		delta += outer.Length - loc.Outer.Length

		viewports = append(viewports, m.Viewport{
			Region:      region,
			OuterRegion: outer,
			Original:    t.loc.Region,
			BufferID:    t.buffer.ID,
		})
	}

	key := m.DocumentKey{FileName: file.Name, Version: fingerprint(text)}
	for i := range viewports {
		viewports[i].Destination = key
	}

	tracer().Debugf("composed %s with %d buffer(s), length delta %d", key, len(viewports), delta)

	return m.ComposedDocument{Key: key, Text: text, Viewports: viewports}, nil
}

func composeStandalone(b m.Buffer) m.ComposedDocument {
	key := m.DocumentKey{FileName: b.ID.FileName, Version: fingerprint(b.Content)}
	whole := m.Span{Start: 0, Length: len(b.Content)}

	return m.ComposedDocument{
		Key:  key,
		Text: b.Content,
		Viewports: []m.Viewport{{
			Destination: key,
			Region:      whole,
			OuterRegion: whole,
			Original:    whole,
			BufferID:    b.ID,
		}},
		Standalone: true,
	}
}

func fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))

	return fmt.Sprintf("%x", sum[:8])
}
