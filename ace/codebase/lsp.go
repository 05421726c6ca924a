package codebase

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/acels/ace/parser"
	"github.com/dhamidi/acels/config"
)

const lsName = "acels"

var lspLog = commonlog.GetLogger("acels.lsp")

type LSPServer struct {
	codebase *Codebase
	cfg      *config.Config
	handler  protocol.Handler
	server   *server.Server
	version  string

	mu      sync.Mutex
	open    map[string]bool
	notify  glsp.NotifyFunc
	watcher *Watcher
	cancel  context.CancelFunc
}

// NewLSPServer returns a language server configured by cfg. A nil cfg means
// config.Defaults.
func NewLSPServer(version string, cfg *config.Config) *LSPServer {
	if cfg == nil {
		cfg = config.Defaults()
	}
	ls := &LSPServer{
		cfg:     cfg,
		version: version,
		open:    make(map[string]bool),
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentCompletion:     ls.textDocumentCompletion,
		TextDocumentHover:          ls.textDocumentHover,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir, ls.cfg)
	lspLog.Infof("initialize %s", rootDir)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"{", ";"},
	}
	capabilities.HoverProvider = true
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.mu.Lock()
	ls.notify = ctx.Notify
	ls.mu.Unlock()

	wctx, cancel := context.WithCancel(context.Background())
	ls.cancel = cancel

	if err := ls.codebase.ScanAll(wctx); err != nil {
		lspLog.Warningf("scan: %v", err)
	}

	if ls.cfg.Workspace.Watch {
		w, err := NewWatcher(ls.codebase, ls.fileChanged)
		if err != nil {
			lspLog.Errorf("watcher: %v", err)
			return nil
		}
		w.Skip = ls.isOpen
		if err := w.Start(wctx); err != nil {
			lspLog.Errorf("watcher: %v", err)
			w.Close()
			return nil
		}
		ls.watcher = w
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.cancel != nil {
		ls.cancel()
	}
	if ls.watcher != nil {
		ls.watcher.Close()
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) isOpen(path string) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.open[path]
}

func (ls *LSPServer) setOpen(path string, open bool) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if open {
		ls.open[path] = true
	} else {
		delete(ls.open, path)
	}
}

// fileChanged publishes diagnostics for files changed on disk.
func (ls *LSPServer) fileChanged(path string, f *FileInfo) {
	ls.mu.Lock()
	notify := ls.notify
	ls.mu.Unlock()
	if notify == nil {
		return
	}
	var diags []protocol.Diagnostic
	if f != nil {
		diags = toProtocolDiagnostics(f.Content, f.Document.Diagnostics())
	}
	publish(notify, path, diags)
}

func (ls *LSPServer) publishFile(ctx *glsp.Context, f *FileInfo) {
	publish(ctx.Notify, f.Path, toProtocolDiagnostics(f.Content, f.Document.Diagnostics()))
}

func publish(notify glsp.NotifyFunc, path string, diags []protocol.Diagnostic) {
	if diags == nil {
		diags = []protocol.Diagnostic{}
	}
	notify(string(protocol.ServerTextDocumentPublishDiagnostics), protocol.PublishDiagnosticsParams{
		URI:         pathToURI(path),
		Diagnostics: diags,
	})
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.setOpen(path, true)
	ls.publishFile(ctx, ls.codebase.UpdateFile(path, params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.publishFile(ctx, ls.codebase.UpdateFile(path, textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.setOpen(path, false)

	// The buffer may have been discarded; fall back to the file on disk.
	if f, err := ls.codebase.ScanFile(path); err == nil {
		ls.publishFile(ctx, f)
	} else {
		ls.codebase.RemoveFile(path)
		publish(ctx.Notify, path, nil)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	var f *FileInfo
	if params.Text != nil {
		f = ls.codebase.UpdateFile(path, *params.Text)
	} else if f, err = ls.codebase.ScanFile(path); err != nil {
		lspLog.Errorf("%v", err)
		return nil
	}
	ls.publishFile(ctx, f)
	return nil
}

// filePosition resolves an LSP document position to the stored file and a
// parser position.
func (ls *LSPServer) filePosition(uri protocol.DocumentUri, pos protocol.Position) (*FileInfo, parser.Position, bool) {
	path, err := uriToPath(uri)
	if err != nil {
		return nil, parser.Position{}, false
	}
	f := ls.codebase.GetFile(path)
	if f == nil {
		return nil, parser.Position{}, false
	}
	return f, FromUTF16(f.Content, pos.Line, pos.Character), true
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	f, pos, ok := ls.filePosition(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	completions := ls.codebase.CompletionsAtPoint(f.Path, pos)
	if len(completions) == 0 {
		return nil, nil
	}
	return toProtocolCompletions(completions), nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	f, pos, ok := ls.filePosition(params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	hover, ok := ls.codebase.HoverAtPoint(f.Path, pos)
	if !ok {
		return nil, nil
	}
	rng := toProtocolRange(f.Content, hover.Range)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hover.Text,
		},
		Range: &rng,
	}, nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.codebase.GetFile(path)
	if f == nil {
		return nil, nil
	}
	return toProtocolSymbols(f.Content, ls.codebase.SymbolsOf(path)), nil
}

func toProtocolCompletions(completions []CompletionItem) []protocol.CompletionItem {
	var items []protocol.CompletionItem
	for _, c := range completions {
		kind := toProtocolKind(c.Kind)
		detail := c.Detail
		insertText := c.InsertText
		format := protocol.InsertTextFormatPlainText
		if c.Kind == CompletionKindSnippet {
			format = protocol.InsertTextFormatSnippet
		}

		items = append(items, protocol.CompletionItem{
			Label:            c.Label,
			Kind:             &kind,
			Detail:           &detail,
			InsertText:       &insertText,
			InsertTextFormat: &format,
		})
	}
	return items
}

func toProtocolKind(kind CompletionKind) protocol.CompletionItemKind {
	switch kind {
	case CompletionKindKeyword:
		return protocol.CompletionItemKindKeyword
	case CompletionKindSnippet:
		return protocol.CompletionItemKindSnippet
	default:
		return protocol.CompletionItemKindText
	}
}

func toProtocolPosition(src string, pos parser.Position) protocol.Position {
	line, character := ToUTF16(src, pos)
	return protocol.Position{Line: line, Character: character}
}

func toProtocolRange(src string, r parser.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(src, r.Start),
		End:   toProtocolPosition(src, r.End),
	}
}

func toProtocolDiagnostics(src string, diags []parser.Diagnostic) []protocol.Diagnostic {
	source := lsName
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		severity := protocol.DiagnosticSeverityError
		if d.Severity == parser.SeverityWarning {
			severity = protocol.DiagnosticSeverityWarning
		}
		out = append(out, protocol.Diagnostic{
			Range:    toProtocolRange(src, d.Range),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return out
}

func toProtocolSymbols(src string, symbols []Symbol) []protocol.DocumentSymbol {
	out := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, s := range symbols {
		ds := protocol.DocumentSymbol{
			Name:           s.Name,
			Kind:           toProtocolSymbolKind(s.Kind),
			Range:          toProtocolRange(src, s.Range),
			SelectionRange: toProtocolRange(src, s.Selection),
		}
		if s.Detail != "" {
			detail := s.Detail
			ds.Detail = &detail
		}
		if len(s.Children) > 0 {
			ds.Children = toProtocolSymbols(src, s.Children)
		}
		out = append(out, ds)
	}
	return out
}

func toProtocolSymbolKind(kind SymbolKind) protocol.SymbolKind {
	switch kind {
	case SymbolKindStatement:
		return protocol.SymbolKindStruct
	case SymbolKindAttribute:
		return protocol.SymbolKindField
	default:
		return protocol.SymbolKindNull
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) protocol.DocumentUri {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
