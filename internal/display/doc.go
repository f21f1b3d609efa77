// Package display formats raw field values for rendering. It is the
// default implementation of the display processor collaborator used by the
// resolver; renderers may supply their own Factory.
package display
