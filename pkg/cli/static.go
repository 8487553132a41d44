package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

func examplesCommand() *cli.Command {
	return &cli.Command{
		Name:  "examples",
		Usage: "Show example repositories to roast",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Println()
			colorTitle.Println("⚖️  GITHUB TRUTH ENGINE - EXAMPLES")
			colorRule.Println(strings.Repeat("━", ruleWidth))

			fmt.Print(`
Here are some example repositories you can roast:

🔥 FRAMEWORKS:
  • ghroast roast facebook/react
  • ghroast roast vuejs/core
  • ghroast roast angular/angular
  • ghroast roast sveltejs/svelte

⚡ BUILD TOOLS:
  • ghroast roast vitejs/vite
  • ghroast roast webpack/webpack
  • ghroast roast evanw/esbuild

🎨 UI LIBRARIES:
  • ghroast roast tailwindlabs/tailwindcss
  • ghroast roast mui/material-ui
  • ghroast roast chakra-ui/chakra-ui

🚀 FULL-STACK:
  • ghroast roast vercel/next.js
  • ghroast roast nuxt/nuxt
  • ghroast roast remix-run/remix

Try them with --spicy for extra heat! 🌶️
`)
			colorRule.Println(strings.Repeat("━", ruleWidth))
			fmt.Println()
			return nil
		},
	}
}

func setupCommand() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Show setup instructions for local and hosted backends",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Println()
			colorTitle.Println("⚖️  GITHUB TRUTH ENGINE - SETUP")
			colorRule.Println(strings.Repeat("━", ruleWidth))

			fmt.Print(`
1. Install Ollama (for local AI)

   macOS/Linux:
   curl -fsSL https://ollama.com/install.sh | sh

   Windows:
   Download from: https://ollama.com/download

2. Pull an AI model

   ollama pull mistral      # Good balance (4GB)
   ollama pull llama3       # Better quality (4.7GB)
   ollama pull codellama    # Code-focused (3.8GB)

3. Verify installation

   ollama list              # See installed models
   ollama serve             # Start Ollama server

4. Run ghroast

   ghroast roast facebook/react
   ghroast roast vercel/next.js --spicy
   ghroast roast --help

5. Optional: Use a hosted model instead

   ghroast roast <repo> --model claude-3-5-haiku-20241022 --api-key sk-...
   ghroast roast <repo> --model gemini-2.0-flash --api-key AI...

✓ You're ready to roast!
`)
			colorRule.Println(strings.Repeat("━", ruleWidth))
			fmt.Println()
			return nil
		},
	}
}

func randomCommand() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "Roast a random trending repository",
		Action: func(ctx context.Context, c *cli.Command) error {
			colorStep.Println("🎲 Finding a random victim...")
			fmt.Println("   (Feature coming soon!)")
			fmt.Println()
			fmt.Println("💡 For now, try:")
			fmt.Println("   ghroast roast facebook/react")
			fmt.Println("   ghroast roast vercel/next.js --spicy")
			return nil
		},
	}
}
