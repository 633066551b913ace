package figmatokens

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
	"github.com/hellenic-development/figma-tokens/pkg/serializer"
	"github.com/hellenic-development/figma-tokens/pkg/sink"
	"github.com/hellenic-development/figma-tokens/pkg/tokens"
)

// Version is the figma-tokens release version.
const Version = "0.3.0"

// Options configures one sync run.
type Options struct {
	AccessToken string
	FileURL     string // Figma file URL; used when FileKey is empty
	FileKey     string // explicit file key; takes precedence over FileURL

	Formats     []serializer.Format          // empty = all formats
	OutputDir   string                       // default "design-tokens"
	OutputNames map[serializer.Format]string // per-format file name overrides

	// NodeIDs and StylePrefix are accepted for configuration compatibility but
	// are not applied: extraction always covers the full document.
	NodeIDs     []string
	StylePrefix string

	// Cache holds destination fingerprints across runs. Nil means a fresh
	// cache per run; watch mode passes one cache to every iteration.
	Cache *sink.FingerprintCache

	// BaseURL overrides the Figma API base URL (tests, proxies).
	BaseURL string

	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Output reports one generated destination.
type Output struct {
	Format serializer.Format
	Path   string
	Status sink.Status
}

// Result contains the sync output: the extracted token snapshot and the status
// of every written destination.
type Result struct {
	Set      *tokens.Set
	FileName string
	Outputs  []Output
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run executes one full sync: fetch the document and style list, extract the
// token snapshot, serialize each requested format, and write every destination.
// A transport failure aborts the run before extraction; a failing destination
// is reported but does not prevent attempting the others.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = "design-tokens"
	}
	formats := opts.Formats
	if len(formats) == 0 {
		formats = serializer.All
	}

	fileKey := opts.FileKey
	if fileKey == "" {
		opts.logInfo("Extracting file key from URL...")
		var err error
		fileKey, err = figma.ExtractFileKey(opts.FileURL)
		if err != nil {
			return nil, fmt.Errorf("extract file key: %w", err)
		}
	}
	opts.logInfo("File key: %s", fileKey)

	var clientOpts []figma.Option
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, figma.WithBaseURL(opts.BaseURL))
	}
	client := figma.NewClient(opts.AccessToken, clientOpts...)

	// The document and style list are independent reads of the same file, so
	// they are fetched concurrently.
	opts.logInfo("Fetching file data and styles from Figma...")
	var (
		fileResp   *figma.FileResponse
		stylesResp *figma.StylesResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fileResp, err = client.GetFile(gctx, fileKey)
		return err
	})
	g.Go(func() error {
		var err error
		stylesResp, err = client.GetFileStyles(gctx, fileKey)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	opts.logInfo("File: %s", fileResp.Name)

	opts.logInfo("Extracting design tokens...")
	set := tokens.Extract(fileResp, stylesResp.Meta.Styles, fileKey)
	opts.logInfo("Extracted %d colors, %d typography, %d spacing, %d effects",
		set.Colors.Len(), set.Typography.Len(), set.Spacing.Len(), set.Effects.Len())

	writer := sink.NewWriter(opts.Cache)
	result := &Result{Set: set, FileName: fileResp.Name}

	var sinkErrs []error
	for _, format := range formats {
		serialize, ok := serializer.ByFormat(format)
		if !ok {
			sinkErrs = append(sinkErrs, fmt.Errorf("unknown output format %q", format))
			continue
		}

		name := opts.OutputNames[format]
		if name == "" {
			name = serializer.DefaultFileName(format)
		}
		dest := filepath.Join(opts.OutputDir, name)

		status, err := writer.Write(dest, []byte(serialize(set)))
		if err != nil {
			opts.logError("Writing %s failed: %v", dest, err)
			sinkErrs = append(sinkErrs, err)
			continue
		}
		opts.logInfo("%s: %s (%s)", format, dest, status)
		result.Outputs = append(result.Outputs, Output{Format: format, Path: dest, Status: status})
	}

	return result, errors.Join(sinkErrs...)
}
