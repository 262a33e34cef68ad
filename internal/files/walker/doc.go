// Package walker visits every non-directory entry beneath a traversal root.
//
// Classification of each visited path uses Lstat, so symbolic links are
// never descended into: a link is handed to the FileHandler like any other
// file. This rules out cycles through links pointing at an ancestor.
//
// Each directory is listed exactly once, before any of its children are
// visited. Renames performed by the handler therefore never show up in a
// listing that is already being iterated, and no file is handled twice.
//
// The walk is fail-fast: the first error from a directory read or from the
// handler stops the walk and is returned unchanged. A path that does not exist
// at visit time is logged at trace level and skipped.
package walker
