package btl

import (
	"fmt"
	"path"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

//GraphDescription returns the description of a node for tree rendering as a
//graph.
func (node *Node) GraphDescription() string {
	var sb strings.Builder
	if node.IsLeaf() {
		sb.WriteString(fmt.Sprintf("%6.5f", node.Value))
	} else {
		sb.WriteString(fmt.Sprintf("f_%d <= %6.5f", node.FeatureNumber, node.Threshold))
	}
	return sb.String()
}

func recurrentDraw(g *cgraph.Graph, node *Node, nodeId *int, parentNode *cgraph.Node) error {
	currentNode, err := g.CreateNode(fmt.Sprint(*nodeId))
	if err != nil {
		return err
	}
	*nodeId++

	if parentNode != nil {
		if _, err := g.CreateEdge("", parentNode, currentNode); err != nil {
			return err
		}
	}

	currentNode.Set("label", node.GraphDescription())
	if node.IsLeaf() {
		currentNode.Set("shape", "box")
		return nil
	}
	if err := recurrentDraw(g, node.Yes, nodeId, currentNode); err != nil {
		return err
	}
	return recurrentDraw(g, node.No, nodeId, currentNode)
}

//DrawGraph renders the parsed tree as a graphviz graph.
func (tree Tree) DrawGraph() (*graphviz.Graphviz, *cgraph.Graph, error) {
	graphViz := graphviz.New()
	graph, err := graphViz.Graph()
	if err != nil {
		return nil, nil, err
	}

	nodeId := 0
	if err := recurrentDraw(graph, tree.Root, &nodeId, nil); err != nil {
		return nil, nil, err
	}

	return graphViz, graph, nil
}

//RenderTrees dumps every tree of the ensemble as a figure file.
func RenderTrees(trees []Tree, dumpPrefix, figureType, picturesDirectory string) error {
	graphvizType, ok := map[string]graphviz.Format{
		"png": graphviz.PNG,
		"svg": graphviz.SVG,
		"jpg": graphviz.JPG,
	}[figureType]
	if !ok {
		return fmt.Errorf("unknown figure type %q", figureType)
	}

	for _, currentTree := range trees {
		filename := fmt.Sprintf("%s_%05d.%s", dumpPrefix, currentTree.Index, figureType)
		graphViz, graph, err := currentTree.DrawGraph()
		if err != nil {
			return err
		}
		if err := graphViz.RenderFilename(graph, graphvizType, path.Join(picturesDirectory, filename)); err != nil {
			return err
		}
	}
	return nil
}
