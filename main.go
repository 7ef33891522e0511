package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/penglyph/binding"
	"github.com/ByLCY/penglyph/dsl"
	"github.com/ByLCY/penglyph/editor"
	"github.com/ByLCY/penglyph/glyphs"
	"github.com/ByLCY/penglyph/layout"
	"github.com/ByLCY/penglyph/renderer"
	canvasrenderer "github.com/ByLCY/penglyph/renderer/canvas"
	"github.com/ByLCY/penglyph/toolpath"
)

const version = "0.1"

// config collects the command line.
type config struct {
	text      string
	data      string
	glyphs    string
	out       string
	width     layout.Length
	height    layout.Length
	advance   layout.Length
	precision int
	annotate  bool
	preview   string
	travel    bool
	debug     string

	session string
	verbose bool
}

func main() {
	cfg := config{
		width:   layout.MM(2),
		height:  layout.MM(2),
		advance: layout.MM(2),
	}
	flag.StringVar(&cfg.text, "text", "", "要绘制的文本，可包含 ${path} 占位符")
	flag.StringVar(&cfg.data, "data", "", "绑定到文本的 JSON 数据")
	flag.StringVar(&cfg.glyphs, "glyphs", glyphs.DefaultName, "字形库：文件路径或 embed:<name>；文件会叠加在内置数字之上")
	flag.StringVar(&cfg.out, "out", "", "G-code 输出路径（为空时写到标准输出）")
	flag.Var(&cfg.width, "width", "单个字形宽度，例如 2mm")
	flag.Var(&cfg.height, "height", "单个字形高度，例如 2mm")
	flag.Var(&cfg.advance, "advance", "每个字符之后光标的水平步进")
	flag.IntVar(&cfg.precision, "precision", toolpath.DefaultPrecision, "坐标小数位数")
	flag.BoolVar(&cfg.annotate, "annotate", false, "输出 ; letter / ; path 注释行")
	flag.StringVar(&cfg.preview, "preview", "", "预览输出路径（.pdf 或 .svg）")
	flag.BoolVar(&cfg.travel, "travel", false, "预览中绘制抬笔移动")
	flag.StringVar(&cfg.debug, "debug", "", "指令序列调试 JSON 输出路径")
	flag.StringVar(&cfg.session, "session", "", "回放编辑会话脚本，导出结果写到 -out")
	flag.BoolVar(&cfg.verbose, "v", false, "记录编辑器的绘制请求")
	flag.Parse()

	var err error
	if cfg.session != "" {
		err = runSession(cfg, os.Stdout, os.Stderr)
	} else {
		err = run(cfg, os.Stdout)
	}
	if err != nil {
		log.Fatalf("penglyph: %v", err)
	}
}

// run 串联字形库加载、指令生成与输出。
func run(cfg config, stdout io.Writer) error {
	lib, err := loadLibrary(cfg.glyphs)
	if err != nil {
		return err
	}

	text := cfg.text
	if cfg.data != "" {
		data, err := binding.Decode(cfg.data)
		if err != nil {
			return err
		}
		text = binding.Interpolate(text, data)
		if missing := binding.Unresolved(text, data); len(missing) > 0 {
			return fmt.Errorf("unresolved placeholders in text: %s", strings.Join(missing, ", "))
		}
	}
	if text == "" {
		return fmt.Errorf("nothing to draw: -text is empty")
	}

	gen := toolpath.NewGenerator(lib, toolpath.Options{
		Size:    layout.Size{Width: cfg.width.ToMM(), Height: cfg.height.ToMM()},
		Advance: cfg.advance.ToMM(),
	})
	prog, err := gen.Generate(text)
	if err != nil {
		return fmt.Errorf("generate toolpath for %q: %w", text, err)
	}

	if cfg.debug != "" {
		if err := writeDebug(prog, cfg.debug); err != nil {
			return err
		}
	}
	if cfg.preview != "" {
		cr, err := previewRenderer(cfg)
		if err != nil {
			return err
		}
		var r renderer.Renderer = cr
		if err := writePreview(cfg.preview, func() ([]byte, error) { return r.Render(prog) }); err != nil {
			return err
		}
	}

	opts := toolpath.WriteOptions{
		Precision: cfg.precision,
		Annotate:  cfg.annotate,
		Version:   version,
	}
	if cfg.out == "" {
		return toolpath.Write(stdout, prog, opts)
	}
	var buf bytes.Buffer
	if err := toolpath.Write(&buf, prog, opts); err != nil {
		return err
	}
	if err := writeFile(cfg.out, buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %d commands to %s\n", len(prog.Commands), cfg.out)
	return nil
}

// runSession replays an editing script headlessly and writes its exports.
func runSession(cfg config, stdout, stderr io.Writer) error {
	file, err := os.Open(cfg.session)
	if err != nil {
		return fmt.Errorf("open session %s: %w", cfg.session, err)
	}
	defer file.Close()

	sess, err := parseSession(cfg.session, file)
	if err != nil {
		return err
	}

	logger := log.New(stderr, "editor: ", 0)
	displayLog := logger
	if !cfg.verbose {
		displayLog = log.New(io.Discard, "", 0)
	}
	ed := editor.New(editor.LogDisplay{Logger: displayLog}, editor.Options{})

	var exports bytes.Buffer
	if err := editor.Replay(ed, sess, &exports, logger); err != nil {
		return fmt.Errorf("replay %s: %w", cfg.session, err)
	}

	if cfg.preview != "" {
		cr, err := previewRenderer(cfg)
		if err != nil {
			return err
		}
		var r renderer.ModelRenderer = cr
		lib, err := loadLibrary(cfg.glyphs)
		if err != nil {
			return fmt.Errorf("preview frame: %w", err)
		}
		if err := writePreview(cfg.preview, func() ([]byte, error) { return r.RenderModel(ed.Model(), lib.Frame()) }); err != nil {
			return err
		}
	}

	if cfg.out == "" {
		_, err := stdout.Write(exports.Bytes())
		return err
	}
	return writeFile(cfg.out, exports.Bytes())
}

// loadLibrary returns the built-in digits, overlaid with a user library
// when name points at a file.
func loadLibrary(name string) (*glyphs.Library, error) {
	base, err := glyphs.Default()
	if err != nil {
		return nil, fmt.Errorf("load built-in glyphs: %w", err)
	}
	if name == "" || name == glyphs.DefaultName {
		return base, nil
	}
	if glyphs.IsBuiltin(name) {
		data, err := glyphs.Builtin(name)
		if err != nil {
			return nil, err
		}
		return glyphs.Load(name, bytes.NewReader(data))
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open glyph library %s: %w", name, err)
	}
	defer file.Close()
	user, err := glyphs.Load(name, file)
	if err != nil {
		return nil, err
	}
	if user.Frame() != base.Frame() {
		return user, nil
	}
	return base.Merge(user)
}

func previewRenderer(cfg config) (*canvasrenderer.Renderer, error) {
	var format canvasrenderer.Format
	switch strings.ToLower(filepath.Ext(cfg.preview)) {
	case ".pdf":
		format = canvasrenderer.FormatPDF
	case ".svg":
		format = canvasrenderer.FormatSVG
	default:
		return nil, fmt.Errorf("preview %s: expected a .pdf or .svg extension", cfg.preview)
	}
	return canvasrenderer.NewRendererWithOptions(canvasrenderer.Options{
		Format:     format,
		ShowTravel: cfg.travel,
	}), nil
}

func parseSession(name string, r io.Reader) (*dsl.Session, error) {
	sess, err := dsl.ParseSession(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse session %s: %w", name, err)
	}
	return sess, nil
}

func writePreview(path string, render func() ([]byte, error)) error {
	data, err := render()
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	return writeFile(path, data)
}

func writeDebug(prog *toolpath.Program, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("create debug directory: %w", err)
	}
	if err := toolpath.WriteDebugJSON(prog, debugPath); err != nil {
		return fmt.Errorf("write debug JSON: %w", err)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
