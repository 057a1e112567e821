package cmd

import (
	"fmt"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/output"
	"github.com/mj1618/axkit/internal/platform"
	"github.com/spf13/cobra"
)

// ClipboardResult is the output of every `clipboard` subcommand.
type ClipboardResult struct {
	OK        bool   `yaml:"ok"                  json:"ok"`
	Action    string `yaml:"action"              json:"action"`
	Text      string `yaml:"text,omitempty"      json:"text,omitempty"`
	Element   string `yaml:"element,omitempty"   json:"element,omitempty"`
	Attribute string `yaml:"attribute,omitempty" json:"attribute,omitempty"`
}

var clipboardCmd = &cobra.Command{
	Use:   "clipboard",
	Short: "Move text between the clipboard and elements",
	Long: `Read, write or clear the system clipboard, or move text between the
clipboard and an element attribute.

Examples:
  axkit clipboard write "hello"
  axkit clipboard copy --app TextEdit --path AXWindows[0].AXChildren[0] --attr AXSelectedText
  axkit clipboard paste --frontmost --path AXWindows[0].AXChildren[0]`,
}

func init() {
	rootCmd.AddCommand(clipboardCmd)

	clipboardCmd.AddCommand(&cobra.Command{
		Use:   "read",
		Short: "Print the clipboard text",
		Args:  cobra.NoArgs,
		RunE:  runClipboardRead,
	})

	writeCmd := &cobra.Command{
		Use:   "write [text]",
		Short: "Write text to the clipboard",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runClipboardWrite,
	}
	writeCmd.Flags().String("text", "", "Text to write (alternative to the argument)")
	clipboardCmd.AddCommand(writeCmd)

	clipboardCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the clipboard",
		Args:  cobra.NoArgs,
		RunE:  runClipboardClear,
	})

	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy an element attribute to the clipboard",
		Args:  cobra.NoArgs,
		RunE:  runClipboardCopy,
	}
	addTargetFlags(copyCmd)
	copyCmd.Flags().String("attr", ax.AttrValue, "Attribute to copy")
	clipboardCmd.AddCommand(copyCmd)

	pasteCmd := &cobra.Command{
		Use:   "paste",
		Short: "Set an element attribute from the clipboard",
		Args:  cobra.NoArgs,
		RunE:  runClipboardPaste,
	}
	addTargetFlags(pasteCmd)
	pasteCmd.Flags().String("attr", ax.AttrValue, "Attribute to set")
	clipboardCmd.AddCommand(pasteCmd)
}

func clipboardManager() (platform.ClipboardManager, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	if provider.Clipboard == nil {
		return nil, fmt.Errorf("clipboard not supported on this platform")
	}
	return provider.Clipboard, nil
}

func runClipboardRead(cmd *cobra.Command, args []string) error {
	clip, err := clipboardManager()
	if err != nil {
		return err
	}
	text, err := clip.GetText()
	if err != nil {
		return err
	}
	return output.Print(ClipboardResult{OK: true, Action: "read", Text: text})
}

func runClipboardWrite(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	if text == "" && len(args) > 0 {
		text = args[0]
	}
	if text == "" {
		return fmt.Errorf("specify text as an argument or with --text")
	}
	clip, err := clipboardManager()
	if err != nil {
		return err
	}
	if err := clip.SetText(text); err != nil {
		return err
	}
	return output.Print(ClipboardResult{OK: true, Action: "write"})
}

func runClipboardClear(cmd *cobra.Command, args []string) error {
	clip, err := clipboardManager()
	if err != nil {
		return err
	}
	if err := clip.Clear(); err != nil {
		return err
	}
	return output.Print(ClipboardResult{OK: true, Action: "clear"})
}

func runClipboardCopy(cmd *cobra.Command, args []string) error {
	attr, _ := cmd.Flags().GetString("attr")
	clip, err := clipboardManager()
	if err != nil {
		return err
	}
	_, el, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	v, err := el.Get(attr)
	if err != nil {
		return err
	}
	text := fmt.Sprint(ax.Plain(v))
	if err := clip.SetText(text); err != nil {
		return err
	}
	return output.Print(ClipboardResult{
		OK:        true,
		Action:    "copy",
		Text:      text,
		Element:   el.String(),
		Attribute: attr,
	})
}

func runClipboardPaste(cmd *cobra.Command, args []string) error {
	attr, _ := cmd.Flags().GetString("attr")
	clip, err := clipboardManager()
	if err != nil {
		return err
	}
	text, err := clip.GetText()
	if err != nil {
		return err
	}
	_, el, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	if err := el.Set(attr, ax.String(text)); err != nil {
		return err
	}
	return output.Print(ClipboardResult{
		OK:        true,
		Action:    "paste",
		Text:      text,
		Element:   el.String(),
		Attribute: attr,
	})
}
