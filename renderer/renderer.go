package renderer

import (
	"github.com/ByLCY/penglyph/editor"
	"github.com/ByLCY/penglyph/layout"
	"github.com/ByLCY/penglyph/toolpath"
)

// Renderer 将指令序列输出为预览文件，例如 PDF 或 SVG。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(prog *toolpath.Program) ([]byte, error)
}

// ModelRenderer draws an editing model inside its source frame.
type ModelRenderer interface {
	RenderModel(m *editor.Model, frame layout.Frame) ([]byte, error)
}
