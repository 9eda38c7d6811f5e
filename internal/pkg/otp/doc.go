// Package otp generates the numeric one-time codes relayed by the bot.
package otp
