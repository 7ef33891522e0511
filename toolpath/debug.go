package toolpath

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将生成的指令序列输出为 JSON，便于调试或可视化。
func WriteDebugJSON(prog *Program, path string) error {
	if prog == nil {
		return nil
	}
	data, err := json.MarshalIndent(prog, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
