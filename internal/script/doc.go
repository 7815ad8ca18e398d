// Package script runs Lua key macros against an edit session.
//
// Scripts see a sandboxed Lua state with the base, table, string and math
// libraries and an "editor" table:
//
//	editor.press(keys)        -- press keys in key notation, e.g. "(<CR>"
//	editor.type(text)         -- press each character of text
//	editor.text()             -- current buffer text
//	editor.selection()        -- current selection start, end
//	editor.set_text(text)     -- replace the buffer; caret moves to the end
//	editor.select(start, end) -- set the selection (end defaults to start)
//	editor.configure(options) -- apply option overrides, e.g. {indent_width = 4}
//
// Offsets are zero-based byte offsets. print writes to the host's output.
//
//	h := script.New(cfg, script.WithOutput(os.Stdout))
//	defer h.Close()
//	if err := h.DoFile(ctx, "macro.lua"); err != nil {
//		return err
//	}
//
// A Host is safe for concurrent use; calls are serialized.
package script
