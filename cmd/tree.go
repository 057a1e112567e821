package cmd

import (
	"strings"
	"time"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/model"
	"github.com/mj1618/axkit/internal/output"
	"github.com/mj1618/axkit/internal/platform"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the element tree below a target",
	Long: `Print the AXChildren tree below an element with compact keys:
i=id, r=role, sr=subrole, t=title, v=value, d=description, b=bounds [x,y,w,h],
f=focused, e=enabled (only when false), s=selected, a=actions, p=path, c=children.

Each element's path can be passed back to get, set and perform with --path.

Examples:
  axkit tree --app TextEdit --depth 3
  axkit tree --bundle com.apple.Safari --roles interactive --flat
  axkit tree --frontmost --text "Save"`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	addTargetFlags(treeCmd)
	treeCmd.Flags().Int("depth", 0, "Max depth to traverse (0 = unlimited)")
	treeCmd.Flags().Int("max-nodes", 0, "Stop after reading this many elements (0 = unlimited)")
	treeCmd.Flags().String("roles", "", "Comma-separated roles to include (e.g. \"btn,input\"; meta-roles: text, interactive, container)")
	treeCmd.Flags().String("bbox", "", "Only include elements within bounding box (x,y,w,h)")
	treeCmd.Flags().String("text", "", "Only include elements whose text contains this substring")
	treeCmd.Flags().Bool("focused", false, "Only include the focused element and its ancestors")
	treeCmd.Flags().Bool("prune", false, "Drop anonymous groups and promote their children")
	treeCmd.Flags().Bool("flat", false, "Print a flat list with ancestry paths")
	treeCmd.Flags().Bool("raw-roles", false, "Print AXRole names instead of compact codes")
}

// getTreeOptions builds TreeOptions from the tree flags.
func getTreeOptions(cmd *cobra.Command) (model.TreeOptions, error) {
	depth, _ := cmd.Flags().GetInt("depth")
	maxNodes, _ := cmd.Flags().GetInt("max-nodes")
	rolesStr, _ := cmd.Flags().GetString("roles")
	bboxStr, _ := cmd.Flags().GetString("bbox")
	text, _ := cmd.Flags().GetString("text")
	focused, _ := cmd.Flags().GetBool("focused")
	prune, _ := cmd.Flags().GetBool("prune")
	rawRoles, _ := cmd.Flags().GetBool("raw-roles")

	opts := model.TreeOptions{
		SnapshotOptions: model.SnapshotOptions{Depth: depth, MaxNodes: maxNodes, RawRoles: rawRoles},
		Text:            text,
		Focused:         focused,
		Prune:           prune,
	}
	if rolesStr != "" {
		for _, r := range strings.Split(rolesStr, ",") {
			if r = strings.TrimSpace(r); r != "" {
				opts.Roles = append(opts.Roles, r)
			}
		}
	}
	if bboxStr != "" {
		b, err := platform.ParseBBox(bboxStr)
		if err != nil {
			return opts, err
		}
		opts.BBox = &[4]int{b.X, b.Y, b.Width, b.Height}
	}
	return opts, nil
}

func runTree(cmd *cobra.Command, args []string) error {
	opts, err := getTreeOptions(cmd)
	if err != nil {
		return err
	}
	flat, _ := cmd.Flags().GetBool("flat")

	sys, root, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	elements, err := model.Tree(root, opts)
	if err != nil {
		return err
	}

	app, pid := appInfo(sys, root)
	ts := time.Now().Unix()
	if flat {
		return output.Print(output.TreeFlatResult{
			App: app, PID: pid, TS: ts, Elements: model.FlattenElements(elements),
		})
	}
	return output.Print(output.TreeResult{App: app, PID: pid, TS: ts, Elements: elements})
}

// appInfo returns the title and PID of the application owning el, or zero
// values when el has none (the system-wide element).
func appInfo(sys *ax.System, el *ax.Element) (string, int) {
	pid, err := el.PID()
	if err != nil || pid == 0 {
		return "", 0
	}
	app, err := sys.FromPID(pid)
	if err != nil {
		return "", pid
	}
	v, err := app.Get(ax.AttrTitle)
	if err != nil {
		return "", pid
	}
	return model.Text(v), pid
}
