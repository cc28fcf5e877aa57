package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/ganot/amrannot/internal/annotation"
	"github.com/ganot/amrannot/internal/metadata"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ValidateParams is the input of the validate_annotations tool.
type ValidateParams struct {
	Path string `json:"path" jsonschema:"path of the annotation file to validate"`
}

// ValidateResult reports the outcome of a validation.
type ValidateResult struct {
	Valid      bool   `json:"valid"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// DirectoryParams addresses an annotation directory.
type DirectoryParams struct {
	Path string `json:"path" jsonschema:"root directory of annotation files"`
	Kind string `json:"kind,omitempty" jsonschema:"report kind: annotations (default) or mutations"`
}

// FileInfo is one discovered annotation file.
type FileInfo struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// ListResult reports the resolved layout and discovered files.
type ListResult struct {
	Layout string     `json:"layout"`
	Files  []FileInfo `json:"files"`
}

// AggregateResult carries the aggregated metadata table.
type AggregateResult struct {
	Layout  string   `json:"layout"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
	TSV     string   `json:"tsv"`
}

type toolHandlers struct{}

func (toolHandlers) validate(_ context.Context, _ *sdkmcp.CallToolRequest, params ValidateParams) (*sdkmcp.CallToolResult, ValidateResult, error) {
	err := annotation.Format{Path: params.Path}.Validate()
	if err == nil {
		return nil, ValidateResult{Valid: true}, nil
	}

	var verr *annotation.ValidationError
	if errors.As(err, &verr) {
		// A malformed header is a tool result, not a protocol failure.
		return nil, ValidateResult{Valid: false, Diagnostic: verr.Error()}, nil
	}
	return nil, ValidateResult{}, err
}

func (toolHandlers) list(_ context.Context, _ *sdkmcp.CallToolRequest, params DirectoryParams) (*sdkmcp.CallToolResult, ListResult, error) {
	dir, err := openDirectory(params)
	if err != nil {
		return nil, ListResult{}, err
	}
	files, err := dir.Files()
	if err != nil {
		return nil, ListResult{}, err
	}

	out := ListResult{Layout: string(dir.Layout), Files: []FileInfo{}}
	for _, f := range files {
		out.Files = append(out.Files, FileInfo{ID: f.ID, Path: f.Path})
	}
	return nil, out, nil
}

func (toolHandlers) aggregate(_ context.Context, _ *sdkmcp.CallToolRequest, params DirectoryParams) (*sdkmcp.CallToolResult, AggregateResult, error) {
	dir, err := openDirectory(params)
	if err != nil {
		return nil, AggregateResult{}, err
	}
	md, err := metadata.FromDirectory(dir)
	if err != nil {
		return nil, AggregateResult{}, err
	}

	var sb strings.Builder
	if err := md.WriteTSV(&sb); err != nil {
		return nil, AggregateResult{}, err
	}
	return nil, AggregateResult{
		Layout:  string(dir.Layout),
		Rows:    md.Len(),
		Columns: md.Columns(),
		TSV:     sb.String(),
	}, nil
}

func openDirectory(params DirectoryParams) (*annotation.Directory, error) {
	kind := annotation.KindAnnotations
	if params.Kind != "" {
		kind = annotation.Kind(params.Kind)
	}
	switch kind {
	case annotation.KindAnnotations, annotation.KindMutations:
	default:
		return nil, errors.New("kind must be annotations or mutations")
	}
	return annotation.Open(params.Path, kind)
}

func registerTools(server *sdkmcp.Server) {
	h := toolHandlers{}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "validate_annotations",
		Description: "Check whether a TSV file is a structurally valid AMRFinderPlus annotation table",
	}, h.validate)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_annotation_files",
		Description: "List annotation files under a directory with their owning sample/MAG/feature ids",
	}, h.list)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "aggregate_annotations",
		Description: "Aggregate every annotation file under a directory into one sample-keyed metadata table",
	}, h.aggregate)
}
