// Package foo provides two independent utilities: a generic line printer and
// an integer squarer with an explicit overflow policy.
package foo
