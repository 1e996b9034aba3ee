// Package project locates the directories external tools run in.
//
// A React Native checkout has two roots that matter:
//   - the JS project root, which holds package.json. The IDE workspace is
//     often the android/ folder one level below it.
//   - the native Android root, which holds build.gradle.
//
// Both lookups re-read the filesystem on every call and report "not found"
// as a false second return value rather than an error.
package project
