package cmd

import (
	"io"
	"os"

	"github.com/df07/go-optical-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scenes grouped by category.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	writeSceneTable(os.Stdout, scene.ListScenes())
	return nil
}

func writeSceneTable(w io.Writer, groups []scene.SceneGroup) {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "Scene", "Name", "Description"})
	for _, g := range groups {
		for i, info := range g.Scenes {
			group := g.Name
			if i > 0 {
				group = ""
			}
			table.Append([]string{group, info.ID, info.DisplayName, info.Description})
		}
	}
	table.Render()
}
