// Package embedconfig loads embed definitions from YAML or JSON documents
// and builds them with embedbuilder.
//
// A document holds either a single embed:
//
//	title: Deploy finished
//	color: "#57F287"
//	fields:
//	  - name: Service
//	    value: api
//	    inline: true
//	footer:
//	  text: deploy-bot
//	  icon:
//	    attachment: bot.png
//
// or several embeds sent together in one message:
//
//	embeds:
//	  - title: First
//	  - title: Second
//
// Unknown keys are rejected by default. Every value is checked by the same
// builder rules as code that calls embedbuilder directly, and errors keep the
// underlying *embedbuilder.ValidationError reachable through errors.As.
package embedconfig
