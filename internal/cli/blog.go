package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calabashre/calabash/internal/blog"
)

func newBlogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blog [id]",
		Short: "Read market insight posts",
		Long:  "List the market insight posts, or show one post in full.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBlog,
	}
}

func runBlog(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if isJSON() {
			return printJSON(blog.All())
		}
		printBlogList(blog.All())
		return nil
	}

	post, ok := blog.Get(args[0])
	if !ok {
		return fmt.Errorf("post not found: %s", args[0])
	}
	if isJSON() {
		return printJSON(post)
	}
	printBlogPost(post)
	return nil
}
