// Package host reads operating-system and user-session properties.
//
// The kernel is identified with uname(2) on unix and RtlGetVersion on
// Windows (both via golang.org/x/sys). User and directory values come from
// os/user and os, falling back to $USER/$USERNAME where the account database
// cannot be read.
package host
