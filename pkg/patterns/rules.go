package patterns

import "regexp"

// pattern is a single weighted indicator: every occurrence in the source
// counts toward the tool's score.
type pattern struct {
	label string
	re    *regexp.Regexp
}

// toolRule groups the indicators for one tool. Keywords score at most one
// point each (whole-word presence), patterns score per occurrence.
type toolRule struct {
	tool     string
	patterns []pattern
	keywords []keyword
}

type keyword struct {
	word string
	re   *regexp.Regexp
}

func pat(label, expr string) pattern {
	return pattern{label: label, re: regexp.MustCompile(`(?im)` + expr)}
}

func kw(word string) keyword {
	return keyword{word: word, re: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)}
}

// defaultRules is the static screening table. The slice is ordered
// lexicographically by tool identifier; the screener depends on that order
// for its documented tie-break, so keep new entries sorted.
var defaultRules = []toolRule{
	{
		tool: "ansible",
		patterns: []pattern{
			pat("ansible play host target", `^\s*-?\s*hosts:\s+\S+`),
			pat("ansible task list", `^\s*tasks:\s*$`),
			pat("ansible named task", `^\s*- name:\s+\S+`),
			pat("ansible privilege escalation", `^\s*become:\s*(true|yes)\b`),
		},
		keywords: []keyword{kw("playbook"), kw("ansible")},
	},
	{
		tool: "bash",
		patterns: []pattern{
			pat("shell shebang", `^#!/bin/(ba)?sh\b`),
			pat("apt package command", `\bapt(-get)?\s+(install|update|upgrade|remove)\b`),
			pat("yum package command", `\b(yum|dnf)\s+(install|update|remove)\b`),
			pat("systemctl service command", `\bsystemctl\s+(start|stop|enable|disable|restart|reload)\b`),
		},
		keywords: []keyword{kw("chmod"), kw("chown")},
	},
	{
		tool: "chef",
		patterns: []pattern{
			pat("chef package resource", `\bpackage\s+['"][^'"]+['"]\s+do\b`),
			pat("chef service resource", `\bservice\s+['"][^'"]+['"]\s+do\b`),
			pat("chef template resource", `\btemplate\s+['"][^'"]+['"]\s+do\b`),
			pat("chef action declaration", `^\s*action\s+:[a-z_]+`),
			pat("chef guard clause", `\b(not_if|only_if)\b`),
		},
		keywords: []keyword{kw("cookbook"), kw("recipe"), kw("chef")},
	},
	{
		tool: "cloudformation",
		patterns: []pattern{
			pat("cloudformation template version", `\bAWSTemplateFormatVersion\b`),
			pat("cloudformation resource type", `\bAWS::[A-Za-z0-9]+::[A-Za-z0-9]+\b`),
			pat("cloudformation resources block", `^Resources:\s*$`),
			pat("cloudformation intrinsic function", `!(Ref|GetAtt|Sub|Join)\b`),
		},
		keywords: []keyword{kw("cloudformation")},
	},
	{
		tool: "docker",
		patterns: []pattern{
			pat("dockerfile base image", `^FROM\s+\S+`),
			pat("dockerfile run instruction", `^RUN\s+\S+`),
			pat("dockerfile copy instruction", `^(COPY|ADD)\s+\S+`),
			pat("dockerfile entrypoint", `^(ENTRYPOINT|CMD)\s*\[?`),
			pat("dockerfile port exposure", `^EXPOSE\s+\d+`),
		},
		keywords: []keyword{kw("dockerfile")},
	},
	{
		tool: "helm",
		patterns: []pattern{
			pat("helm values reference", `\{\{\s*\.Values\.`),
			pat("helm template include", `\{\{-?\s*(include|template)\s`),
			pat("helm chart api version", `^apiVersion:\s*v2\s*$`),
		},
		keywords: []keyword{kw("helm"), kw("chart")},
	},
	{
		tool: "kubernetes",
		patterns: []pattern{
			pat("kubernetes api version", `^apiVersion:\s+\S+`),
			pat("kubernetes kind", `^kind:\s+[A-Z]\w+`),
			pat("kubernetes metadata block", `^metadata:\s*$`),
			pat("kubernetes container spec", `^\s+containers:\s*$`),
		},
		keywords: []keyword{kw("kubectl"), kw("replicas")},
	},
	{
		tool: "packer",
		patterns: []pattern{
			pat("packer builders block", `"builders"\s*:\s*\[`),
			pat("packer provisioner block", `^\s*provisioner\s+"`),
			pat("packer source block", `^\s*source\s+"[^"]+"\s+"[^"]+"\s*\{`),
		},
		keywords: []keyword{kw("packer")},
	},
	{
		tool: "powershell",
		patterns: []pattern{
			pat("windows feature cmdlet", `\b(Install|Add)-WindowsFeature\b`),
			pat("service cmdlet", `\b(Set|Start|Stop|New)-Service\b`),
			pat("item cmdlet", `\b(New|Set|Remove)-Item\b`),
			pat("powershell variable assignment", `\$[A-Za-z_]\w*\s*=`),
		},
		keywords: []keyword{kw("powershell"), kw("cmdlet")},
	},
	{
		tool: "puppet",
		patterns: []pattern{
			pat("puppet class definition", `\bclass\s+[\w:]+\s*(\(|\{)`),
			pat("puppet ensure attribute", `\bensure\s*=>`),
			pat("puppet package resource", `\bpackage\s*\{`),
			pat("puppet service resource", `\bservice\s*\{`),
			pat("puppet file resource", `\bfile\s*\{`),
		},
		keywords: []keyword{kw("puppet"), kw("manifest")},
	},
	{
		tool: "salt",
		patterns: []pattern{
			pat("salt package state", `\bpkg\.(installed|latest|removed)\b`),
			pat("salt service state", `\bservice\.(running|dead|enabled)\b`),
			pat("salt file state", `\bfile\.(managed|directory|recurse)\b`),
			pat("salt user state", `\buser\.(present|absent)\b`),
			pat("salt requisite", `^\s*- (require|watch|onchanges):`),
		},
		keywords: []keyword{kw("pillar"), kw("saltstack")},
	},
	{
		tool: "terraform",
		patterns: []pattern{
			pat("terraform resource block", `\bresource\s+"[^"]+"\s+"[^"]+"\s*\{`),
			pat("terraform provider block", `\bprovider\s+"[^"]+"\s*\{`),
			pat("terraform variable block", `\bvariable\s+"[^"]+"\s*\{`),
			pat("terraform module block", `\bmodule\s+"[^"]+"\s*\{`),
			pat("terraform output block", `\boutput\s+"[^"]+"\s*\{`),
		},
		keywords: []keyword{kw("terraform"), kw("tfstate")},
	},
	{
		tool: "vagrant",
		patterns: []pattern{
			pat("vagrant configure block", `Vagrant\.configure\(`),
			pat("vagrant box declaration", `\bconfig\.vm\.box\b`),
			pat("vagrant provision declaration", `\bconfig\.vm\.provision\b`),
		},
		keywords: []keyword{kw("vagrantfile")},
	},
}

// Tools returns the tool identifiers known to the default rule table, in
// scoring order.
func Tools() []string {
	out := make([]string, len(defaultRules))
	for i, r := range defaultRules {
		out[i] = r.tool
	}
	return out
}
