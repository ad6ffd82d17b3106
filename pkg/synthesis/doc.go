// Package synthesis turns retrieved context into a final answer by
// rendering a prompt template and calling the language model.
package synthesis
